package http

import (
	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	limiter  *RateLimiter
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		limiter:  NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// RateLimiter returns the per-client limiter used by the router so that its
// cleanup can be run as a background worker.
func (h *Handler) RateLimiter() *RateLimiter {
	return h.limiter
}
