// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// initEngine loads and validates the catalog artifact and builds the engine.
// Any misalignment is a *catalog.ConfigurationError and stops startup.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	cat, err := catalog.Load(ctx, catalog.Source{
		Path:           cfg.Catalog.Path,
		SimilarityPath: cfg.Catalog.SimilarityPath,
	})
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(cat, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	metrics.SetCatalogItems(cat.Len())
	logger.Info().Int("items", cat.Len()).Str("path", cfg.Catalog.Path).Msg("catalog loaded")
	return engine, nil
}

// initMetadata builds the OMDb client, circuit breaker and cache tiers.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initMetadata(cfg *config.Config, logger zerolog.Logger) (*metadata.Components, error) {
	md, err := metadata.NewComponents(cfg.OMDb, cfg.MetadataCache, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("max_entries", cfg.MetadataCache.MaxEntries).
		Dur("ttl", cfg.MetadataCache.TTL).
		Bool("persistent", md.Store != nil).
		Msg("metadata enrichment ready")
	return md, nil
}
