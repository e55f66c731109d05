// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides a thread-safe, bounded, TTL-aware LRU cache.

The metadata enrichment layer memoizes successful poster/rating lookups here
so repeated requests for the same external identifier never repeat the
network round trip while the entry is live.

# Eviction

Two policies apply independently:
  - Capacity: adding past capacity evicts the least recently used entry
  - TTL: entries older than the TTL are treated as misses on Get and are
    removed in bulk by CleanupExpired (run periodically by the supervisor)

# Usage

	memo := cache.NewLRU[metadata.Metadata](1000, 24*time.Hour)
	memo.Add("tt0112870", md)
	if md, ok := memo.Get("tt0112870"); ok {
	    // served from memory
	}
*/
package cache
