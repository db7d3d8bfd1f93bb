package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gstmate/gstmate/internal/adapter/http/handler"
	"github.com/gstmate/gstmate/internal/adapter/http/middleware"
	"github.com/gstmate/gstmate/internal/infrastructure/auth"
	"github.com/gstmate/gstmate/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CalculationHandler *handler.CalculationHandler
	HealthHandler      *handler.HealthHandler
	TokenManager       *auth.TokenManager
	IdempotencyStore   usecase.IdempotencyStore
	Logger             zerolog.Logger
	SummaryRateLimit   float64
	SummaryRateBurst   int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/calculations", func(r chi.Router) {
			// Compute works without identity; with one it records history.
			r.With(middleware.OptionalAuth(cfg.TokenManager)).
				Post("/", cfg.CalculationHandler.Compute)

			r.With(middleware.RequireAuth(cfg.TokenManager)).
				Get("/history", cfg.CalculationHandler.History)

			summaryLimiter := middleware.NewRateLimiter(cfg.SummaryRateLimit, cfg.SummaryRateBurst)
			r.With(middleware.RequireAuth(cfg.TokenManager), summaryLimiter.Limit).
				Post("/summary", cfg.CalculationHandler.Summarize)
		})
	})

	return r
}
