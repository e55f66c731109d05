// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import "time"

const (
	// DefaultCapacity is used when a non-positive capacity is requested.
	DefaultCapacity = 1000

	// DefaultTTL is used when a non-positive TTL is requested.
	DefaultTTL = 24 * time.Hour
)

// Store is the keyed cache contract consumed by the metadata layer.
// LRU is the only implementation; tests substitute their own.
type Store[V any] interface {
	Get(key string) (V, bool)
	Peek(key string) (V, bool)
	Add(key string, value V)
	Remove(key string) bool
	Purge() int
	CleanupExpired() int
	Stats() Stats
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Expired   int64 `json:"expired"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRate returns hits as a percentage of all lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

var _ Store[string] = (*LRU[string])(nil)
