// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// errLookupFailed marks a singleflight result that must not be cached.
var errLookupFailed = errors.New("metadata lookup failed")

// Fetcher resolves IMDb IDs to display metadata through the cache tiers and
// the provider. It is safe for concurrent use.
type Fetcher struct {
	provider Provider
	memo     cache.Store[Metadata]
	store    PersistentStore
	group    singleflight.Group
	logger   zerolog.Logger
}

var _ MetadataFetcher = (*Fetcher)(nil)

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithPersistentStore adds a second cache tier consulted on memo misses.
func WithPersistentStore(s PersistentStore) FetcherOption {
	return func(f *Fetcher) {
		f.store = s
	}
}

// NewFetcher creates a fetcher over provider and memo.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFetcher(provider Provider, memo cache.Store[Metadata], logger zerolog.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		provider: provider,
		memo:     memo,
		logger:   logger.With().Str("component", "metadata").Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchMetadata returns the poster URL and rating for imdbID. It never fails:
// any problem yields (PlaceholderPosterURL, "N/A").
func (f *Fetcher) FetchMetadata(ctx context.Context, imdbID string) (posterURL, rating string) {
	m := f.Fetch(ctx, imdbID)
	return m.PosterURL, m.Rating
}

// Fetch is FetchMetadata returning a Metadata value.
func (f *Fetcher) Fetch(ctx context.Context, imdbID string) Metadata {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		metrics.RecordMetadataLookup(metrics.LookupFallbackEmptyID, 0)
		return Fallback()
	}

	if m, ok := f.memo.Get(imdbID); ok {
		metrics.RecordCacheHit(metrics.TierMemory)
		return m
	}
	metrics.RecordCacheMiss(metrics.TierMemory)

	// The flight is shared by every caller waiting on imdbID, so it must not
	// inherit one caller's cancellation. The client timeout still bounds it.
	flight := context.WithoutCancel(ctx)
	ch := f.group.DoChan(imdbID, func() (interface{}, error) {
		return f.resolve(flight, imdbID)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Fallback()
		}
		m, ok := res.Val.(Metadata)
		if !ok {
			return Fallback()
		}
		return m
	case <-ctx.Done():
		return Fallback()
	}
}

// resolve runs once per in-flight ID: persistent tier, then upstream.
func (f *Fetcher) resolve(ctx context.Context, imdbID string) (Metadata, error) {
	logger := f.requestLogger(ctx).With().Str("imdb_id", imdbID).Logger()

	// Another flight may have filled the memo since the caller's miss.
	if m, ok := f.memo.Peek(imdbID); ok {
		return m, nil
	}

	if f.store != nil {
		m, found, err := f.store.Get(ctx, imdbID)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("persistent metadata store read failed")
		case found:
			metrics.RecordCacheHit(metrics.TierPersistent)
			f.remember(imdbID, m)
			return m, nil
		default:
			metrics.RecordCacheMiss(metrics.TierPersistent)
		}
	}

	start := time.Now()
	title, err := f.provider.Lookup(ctx, imdbID)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordMetadataLookup(metrics.LookupFailure, elapsed)
		event := logger.Warn().Str("error", logging.SanitizeError(err)).Dur("elapsed", elapsed)
		var lookupErr *LookupError
		if errors.As(err, &lookupErr) {
			event = event.Str("url", lookupErr.URL)
		}
		event.Msg("metadata lookup failed, using fallback")
		return Metadata{}, errLookupFailed
	}

	m, posterNA := fromTitle(title)
	if posterNA {
		metrics.RecordMetadataLookup(metrics.LookupPosterNA, elapsed)
	} else {
		metrics.RecordMetadataLookup(metrics.LookupSuccess, elapsed)
	}

	f.remember(imdbID, m)
	if f.store != nil {
		if err := f.store.Put(ctx, imdbID, m); err != nil {
			logger.Warn().Err(err).Msg("persistent metadata store write failed")
		}
	}

	logger.Debug().Dur("elapsed", elapsed).Bool("poster_na", posterNA).Msg("metadata fetched")
	return m, nil
}

func (f *Fetcher) remember(imdbID string, m Metadata) {
	f.memo.Add(imdbID, m)
	metrics.SetCacheSize(f.memo.Stats().Size)
}

// PurgeResult reports how many entries a purge removed per tier.
type PurgeResult struct {
	Memory     int `json:"memory"`
	Persistent int `json:"persistent"`
}

// Purge empties both cache tiers.
func (f *Fetcher) Purge(ctx context.Context) (PurgeResult, error) {
	res := PurgeResult{Memory: f.memo.Purge()}
	metrics.SetCacheSize(0)

	if f.store != nil {
		n, err := f.store.Purge(ctx)
		if err != nil {
			return res, err
		}
		res.Persistent = n
	}

	f.logger.Info().Int("memory", res.Memory).Int("persistent", res.Persistent).Msg("metadata cache purged")
	return res, nil
}

// CleanupExpired drops expired memo entries and returns how many were removed.
func (f *Fetcher) CleanupExpired() int {
	n := f.memo.CleanupExpired()
	metrics.SetCacheSize(f.memo.Stats().Size)
	return n
}

// Stats returns memo counters.
func (f *Fetcher) Stats() cache.Stats {
	return f.memo.Stats()
}

// HasPersistentStore reports whether a second tier is configured.
func (f *Fetcher) HasPersistentStore() bool {
	return f.store != nil
}

func (f *Fetcher) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return f.logger.With().Str("request_id", id).Logger()
	}
	return f.logger
}
