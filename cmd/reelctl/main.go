// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Command reelctl inspects catalog artifacts and runs recommendations from
// the command line.
//
//	reelctl validate --catalog data/catalog.json
//	reelctl names --q dil
//	reelctl recommend "Sholay" --enrich
//	reelctl export --catalog movies.parquet --similarity sim.parquet --out catalog.json
//	ADMIN_JWT_SECRET=... reelctl admin-token --user ops
//
// Settings come from the same layers as the server (config.yaml, environment,
// .env). Flags override the catalog location.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
