// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// DefaultMaxConcurrency bounds parallel lookups per Enrich call.
const DefaultMaxConcurrency = 5

// EnrichedResult pairs a catalog item with its display metadata.
type EnrichedResult struct {
	Item     catalog.Item
	Metadata Metadata
}

// Enricher fetches metadata for a list of items concurrently.
type Enricher struct {
	fetcher        MetadataFetcher
	maxConcurrency int
}

// NewEnricher creates an enricher. maxConcurrency <= 0 uses the default.
func NewEnricher(fetcher MetadataFetcher, maxConcurrency int) *Enricher {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Enricher{fetcher: fetcher, maxConcurrency: maxConcurrency}
}

// Enrich returns one result per item, in input order. A failed or timed-out
// lookup degrades only its own item to the fallback pair.
func (e *Enricher) Enrich(ctx context.Context, items []catalog.Item) []EnrichedResult {
	results := make([]EnrichedResult, len(items))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)

	for i := range items {
		g.Go(func() error {
			results[i] = EnrichedResult{
				Item:     items[i],
				Metadata: e.fetcher.Fetch(ctx, items[i].ID),
			}
			return nil
		})
	}

	_ = g.Wait() // lookups never return errors
	return results
}
