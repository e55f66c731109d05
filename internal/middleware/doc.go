// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the Reelmatch API.

Key Components:

  - RequestIDWithLogging: X-Request-ID propagation, a request-scoped zerolog
    logger in the context, and one access log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge labeled by
    chi route pattern

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestIDWithLogging(logger))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    ...
	})
*/
package middleware
