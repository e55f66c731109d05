// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a catalog artifact to the single-file JSON form",
		Long:  "Loads any supported catalog (json, parquet or csv plus its similarity matrix), validates it and writes the JSON artifact the server loads fastest. Row order is preserved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("--out is required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(out) //nolint:gosec // operator-supplied output path
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := catalog.Encode(f, cat); err != nil {
				_ = f.Close()
				return fmt.Errorf("encode catalog: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items to %s\n", cat.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination .json file")
	return cmd
}
