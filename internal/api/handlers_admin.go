// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/auth"
	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// PurgeResponse is the body of DELETE /admin/metadata/cache.
type PurgeResponse struct {
	Removed    int `json:"removed"`
	Memory     int `json:"memory"`
	Persistent int `json:"persistent"`
}

// CacheStatsResponse is the body of GET /admin/metadata/cache/stats.
type CacheStatsResponse struct {
	cache.Stats
	HitRate    float64 `json:"hit_rate"`
	Persistent bool    `json:"persistent"`
}

// PurgeMetadataCache empties the metadata cache. Later lookups go upstream.
func (h *Handler) PurgeMetadataCache(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	res, err := h.metadata.Purge(r.Context())
	if err != nil {
		rw.InternalError("failed to purge metadata cache", err)
		return
	}

	event := logging.Ctx(r.Context()).Info().Int("memory", res.Memory).Int("persistent", res.Persistent)
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		event = event.Str("admin", claims.Username)
	}
	event.Msg("metadata cache purged by admin")

	rw.Success(PurgeResponse{
		Removed:    res.Memory + res.Persistent,
		Memory:     res.Memory,
		Persistent: res.Persistent,
	})
}

// MetadataCacheStats returns memo counters.
func (h *Handler) MetadataCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.metadata.Stats()
	NewResponseWriter(w, r).Success(CacheStatsResponse{
		Stats:      stats,
		HitRate:    stats.HitRate(),
		Persistent: h.metadata.HasPersistentStore(),
	})
}
