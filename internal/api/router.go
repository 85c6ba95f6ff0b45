// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pcdlite/pcdlite/internal/config"
	"github.com/pcdlite/pcdlite/internal/middleware"
)

// NewRouter builds the chi router with the global middleware stack and
// all routes.
func NewRouter(h *Handler, cfg config.APIConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	// Permissive CORS for the demo dashboard.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	if cfg.RateLimitRequests > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/search", h.Search)
	r.Post("/click", h.Click)

	r.Get("/debug/last-query", h.LastQuery)
	r.Get("/analytics", h.Analytics)
	r.Get("/analytics/variants", h.AnalyticsVariants)
	r.Get("/session/{sessionID}/events", h.SessionEvents)
	r.Get("/voice/suggestions", h.VoiceSuggestions)
	r.Get("/catalog", h.Catalog)

	return r
}
