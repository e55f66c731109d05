// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/auth"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	jwtManager    *auth.JWTManager // nil disables the admin routes
	logger        zerolog.Logger
}

// NewRouter creates a router from the security configuration. Admin routes
// are mounted only when an admin JWT secret is configured.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRouter(handler *Handler, sec config.SecurityConfig, logger zerolog.Logger) (*Router, error) {
	router := &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromSecurity(sec),
		logger:        logger,
	}

	if sec.AdminEnabled() {
		m, err := auth.NewJWTManager(sec.AdminJWTSecret, auth.DefaultTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("admin auth: %w", err)
		}
		router.jwtManager = m
	}

	return router, nil
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestIDWithLogging(router.logger))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)
		r.Get("/model", router.handler.Model)
		r.Get("/movies", router.handler.ListMovies)
		r.Get("/movies/{name}", router.handler.GetMovie)
		r.Get("/recommendations", router.handler.Recommendations)

		if router.jwtManager != nil {
			r.Route("/admin/metadata/cache", func(r chi.Router) {
				r.Use(auth.RequireRole(router.jwtManager, auth.RoleAdmin, WriteError))
				r.Delete("/", router.handler.PurgeMetadataCache)
				r.Get("/stats", router.handler.MetadataCacheStats)
			})
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
