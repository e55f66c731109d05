// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP JSON API for Reelmatch.

Routes (all under /api/v1 unless noted):

  - GET /health: liveness, catalog size and circuit breaker state
  - GET /model: the scoring model description
  - GET /movies?q=&limit=: sorted catalog names, optionally filtered
  - GET /movies/{name}: one catalog row with poster and rating
  - GET /recommendations?movie=&enrich=: the shortlist for a movie
  - DELETE /admin/metadata/cache: purge cached metadata (admin JWT)
  - GET /admin/metadata/cache/stats: cache counters (admin JWT)
  - GET /metrics (root): Prometheus exposition

Every response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "query_time_ms": 3}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Middleware order is request ID and access logging, real IP, panic recovery,
CORS, then per-IP rate limiting, security headers and Prometheus metrics on
the API routes. Admin routes additionally require a bearer token with the
admin role.

Example:

	handler := api.NewHandler(engine, fetcher, breaker, cfg.OMDb.MaxConcurrency)
	router, err := api.NewRouter(handler, cfg.Security, logging.Logger())
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
