// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// MetadataCache is the enrichment surface the handlers need.
// *metadata.Fetcher satisfies it.
type MetadataCache interface {
	metadata.MetadataFetcher
	Purge(ctx context.Context) (metadata.PurgeResult, error)
	Stats() cache.Stats
	HasPersistentStore() bool
}

// BreakerState reports the upstream circuit breaker state.
type BreakerState interface {
	State() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health and model endpoints
//   - handlers_movies.go: catalog browsing
//   - handlers_recommend.go: recommendations
//   - handlers_admin.go: metadata cache administration
type Handler struct {
	engine    *recommend.Engine
	metadata  MetadataCache
	enricher  *metadata.Enricher
	breaker   BreakerState
	startTime time.Time
}

// NewHandler creates the API handler. breaker may be nil when the lookup
// client is used without one; maxConcurrency bounds parallel enrichment.
func NewHandler(engine *recommend.Engine, md MetadataCache, breaker BreakerState, maxConcurrency int) *Handler {
	return &Handler{
		engine:    engine,
		metadata:  md,
		enricher:  metadata.NewEnricher(md, maxConcurrency),
		breaker:   breaker,
		startTime: time.Now(),
	}
}
