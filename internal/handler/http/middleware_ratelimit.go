package http

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
)

const (
	// visitorIdleTTL is how long a client may stay silent before its limiter
	// is dropped.
	visitorIdleTTL = 3 * time.Minute

	visitorCleanupInterval = time.Minute

	rateLimitDetail = "Too many requests. Please try again later."
)

type visitor struct {
	limiter *rate.Limiter

	// lastSeen holds unix nanoseconds of the latest request.
	lastSeen atomic.Int64
}

// RateLimiter applies a token bucket per client IP. A non-positive rate
// disables limiting.
type RateLimiter struct {
	limit rate.Limit
	burst int

	visitors sync.Map
	now      func() time.Time

	logger *logger.Logger
}

func NewRateLimiter(perSecond float64, burst int, logger *logger.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:  rate.Limit(perSecond),
		burst:  burst,
		now:    time.Now,
		logger: logger,
	}
}

func (l *RateLimiter) enabled() bool {
	return l != nil && l.limit > 0
}

// Allow reports whether a request from key may proceed now.
func (l *RateLimiter) Allow(key string) bool {
	if !l.enabled() {
		return true
	}

	v, _ := l.visitors.LoadOrStore(key, &visitor{
		limiter: rate.NewLimiter(l.limit, l.burst),
	})
	vis := v.(*visitor)

	now := l.now()
	vis.lastSeen.Store(now.UnixNano())

	return vis.limiter.AllowN(now, 1)
}

// retryAfter is the number of whole seconds until one token is available.
func (l *RateLimiter) retryAfter() int {
	return int(math.Max(1, math.Ceil(1/float64(l.limit))))
}

func (l *RateLimiter) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if l.Allow(ip) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().
			Str("func", "*RateLimiter.withRateLimit").
			Str("ip", ip).
			Msg("rate limit exceeded")

		w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
		utils.WriteJSON(w, errorResponse{Detail: rateLimitDetail}, http.StatusTooManyRequests)
	})
}

// cleanup drops visitors idle for longer than visitorIdleTTL and returns
// how many were removed.
func (l *RateLimiter) cleanup() int {
	cutoff := l.now().Add(-visitorIdleTTL).UnixNano()
	removed := 0

	l.visitors.Range(func(key, value any) bool {
		if value.(*visitor).lastSeen.Load() < cutoff {
			l.visitors.Delete(key)
			removed++
		}
		return true
	})

	return removed
}

// Run starts the periodic visitor cleanup and returns immediately. The
// cleanup stops when ctx is done.
func (l *RateLimiter) Run(ctx context.Context) {
	if !l.enabled() {
		return
	}

	go func() {
		ticker := time.NewTicker(visitorCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				l.logger.Debug().Msg("rate limiter cleanup stopped")
				return
			case <-ticker.C:
				if removed := l.cleanup(); removed > 0 {
					l.logger.Debug().Int("removed", removed).Msg("idle rate limit visitors removed")
				}
			}
		}
	}()
}

// clientIP is the host part of RemoteAddr, which the RealIP middleware has
// already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
