// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
)

// Components is the assembled enrichment stack:
// OMDbClient -> BreakerProvider -> Fetcher (memo, optional badger tier).
type Components struct {
	Fetcher *Fetcher
	Breaker *BreakerProvider
	Store   *BadgerStore // nil when no store path is configured
}

// NewComponents builds the enrichment stack from configuration.
// Call Close when done to release the persistent store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewComponents(omdb config.OMDbConfig, mc config.MetadataCacheConfig, logger zerolog.Logger) (*Components, error) {
	client, err := NewOMDbClient(ClientConfig{
		BaseURL:   omdb.BaseURL,
		APIKey:    omdb.APIKey,
		Timeout:   omdb.Timeout,
		RateLimit: omdb.RateLimit,
		RateBurst: omdb.RateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("omdb client: %w", err)
	}

	breaker := NewBreakerProvider(client, DefaultBreakerSettings(), logger)
	memo := cache.NewLRU[Metadata](mc.MaxEntries, mc.TTL)

	c := &Components{Breaker: breaker}

	var opts []FetcherOption
	if mc.StorePath != "" {
		store, err := NewBadgerStore(mc.StorePath, mc.TTL)
		if err != nil {
			return nil, err
		}
		c.Store = store
		opts = append(opts, WithPersistentStore(store))
	}

	c.Fetcher = NewFetcher(breaker, memo, logger, opts...)
	return c, nil
}

// Close releases the persistent store, if any.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
