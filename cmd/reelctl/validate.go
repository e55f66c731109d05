// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that a catalog artifact loads and is aligned",
		Long:  "Loads the catalog and its similarity matrix and runs the same checks as server startup: unique names, popularity in [0,1], a square matrix with one row per item and every cell in [0,1].",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			missingIDs := 0
			for _, item := range cat.Items() {
				if item.ID == "" {
					missingIDs++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog OK: %d items, %dx%d similarity matrix\n", cat.Len(), cat.Len(), cat.Len())
			if missingIDs > 0 {
				fmt.Fprintf(out, "note: %d items have no external id and will show placeholder metadata\n", missingIDs)
			}
			return nil
		},
	}
}
