package handler

import (
	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/handler/http"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/internal/workers"
)

type Handlers struct {
	HTTP *http.Handler

	// Workers are the background jobs the handlers depend on.
	Workers *workers.Workers
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler := http.NewHandler(services, cfg, logger)

	return &Handlers{
		HTTP:    httpHandler,
		Workers: workers.NewWorkers(httpHandler.RateLimiter()),
	}, nil
}
