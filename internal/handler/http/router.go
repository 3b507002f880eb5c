package http

import (
	"log/slog"
	"net/http"

	"urlite/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the full route table with its middleware chain.
// The short-code redirect is registered last as a catch-all; everything else
// must have an explicit route above it. limiter may be nil (rate limiting
// disabled), in which case /api/shorten is unthrottled.
func NewRouter(h *Handler, tokens *auth.TokenManager, limiter RateLimiter, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		RequestIDMiddleware,
		CORSMiddleware,
		MetricsMiddleware,
	)

	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Anonymous callers may shorten; custom aliases need a token
		r.Group(func(r chi.Router) {
			r.Use(OptionalAuth(tokens))
			if limiter != nil {
				r.Use(RateLimitMiddleware(limiter))
			}
			r.Post("/shorten", h.CreateLink)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.With(RequireAuth(tokens)).Get("/me", h.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))

			r.Get("/urls", h.ListLinks)
			r.Put("/urls/{id}", h.UpdateLink)
			r.Delete("/urls/{id}", h.DeleteLink)

			r.Route("/analytics/{urlID}", func(r chi.Router) {
				r.Get("/summary", h.AnalyticsSummary)
				r.Get("/timeline", h.AnalyticsTimeline)
				r.Get("/referrers", h.AnalyticsReferrers)
				r.Get("/devices", h.AnalyticsDevices)
				r.Get("/locations", h.AnalyticsLocations)
				r.Get("/browsers", h.AnalyticsBrowsers)
			})

			r.Get("/qr/{urlID}", h.QRCode)
		})
	})

	// Catch-all: everything else is treated as a short code
	r.Get("/{shortCode}", h.Redirect)

	return r
}
