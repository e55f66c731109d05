// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	catalogPath    string
	similarityPath string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "reelctl",
		Short:         "Reelmatch catalog and recommendation tool",
		Long:          "reelctl validates precomputed catalog artifacts, lists selectable movies, ranks recommendations and mints admin tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog artifact (.json, .parquet or .csv); overrides CATALOG_PATH")
	cmd.PersistentFlags().StringVarP(&opts.similarityPath, "similarity", "s", "", "Similarity matrix for columnar catalogs; overrides SIMILARITY_PATH")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging to stderr")

	cmd.AddCommand(
		newValidateCmd(opts),
		newNamesCmd(opts),
		newRecommendCmd(opts),
		newExportCmd(opts),
		newAdminTokenCmd(),
	)

	return cmd
}

// loadConfig reads the layered configuration and applies flag overrides.
// It does not validate: offline commands need no API key.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadUnvalidated()
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.similarityPath != "" {
		cfg.Catalog.SimilarityPath = o.similarityPath
	}
	return cfg, nil
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.Load(ctx, catalog.Source{
		Path:           cfg.Catalog.Path,
		SimilarityPath: cfg.Catalog.SimilarityPath,
	})
}
