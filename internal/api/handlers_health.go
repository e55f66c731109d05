// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status         string  `json:"status"`
	CatalogItems   int     `json:"catalog_items"`
	CircuitBreaker string  `json:"circuit_breaker"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// Health reports liveness. Recommendations still work while the lookup
// breaker is open, so an open breaker only degrades the status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:         "healthy",
		CatalogItems:   h.engine.Catalog().Len(),
		CircuitBreaker: "disabled",
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
	}

	if h.breaker != nil {
		status.CircuitBreaker = h.breaker.State()
		if status.CircuitBreaker == "open" {
			status.Status = "degraded"
		}
	}

	NewResponseWriter(w, r).Success(status)
}

// Model describes how recommendations are scored.
func (h *Handler) Model(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.ModelInfo())
}
