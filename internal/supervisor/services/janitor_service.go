// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCleanupInterval is used when no interval is configured.
const DefaultCleanupInterval = time.Minute

// ExpiringCache drops entries past their TTL on demand.
// *metadata.Fetcher satisfies it.
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheJanitorService sweeps expired metadata entries on a fixed interval
// so that stale entries do not hold capacity until they are next read.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor. A non-positive interval uses
// DefaultCleanupInterval.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheJanitorService(cache ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if n := s.cache.CleanupExpired(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("expired metadata entries removed")
			}
		}
	}
}

// String names the service in supervisor events.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
