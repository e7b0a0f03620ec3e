// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package api provides HTTP routing and handlers using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/config"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/metrics"
)

// NewRouter wires all HTTP routes and middleware.
func NewRouter(h *Handler, sec config.SecurityConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogging)

	// Health and metrics stay outside the rate limit so probes and
	// scrapers never get throttled.
	r.Get("/healthz", h.HealthLive)
	r.Get("/readyz", h.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !sec.RateLimitDisabled {
			r.Use(httprate.Limit(
				sec.RateLimitReqs,
				sec.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
					metrics.APIRateLimitHits.WithLabelValues(req.URL.Path).Inc()
					respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests", nil)
				}),
			))
		}
		r.Use(PrometheusMetrics)

		r.Post("/recommendations", h.Recommendations)
		r.Post("/onboarding", h.Onboarding)
		r.Get("/popular", h.Popular)
		r.Get("/similar-profile/{userID}", h.SimilarProfile)
		r.Get("/explanations/{userID}/{restaurantID}", h.Explanation)
		r.Post("/explanations", h.Explanations)
	})

	return r
}
