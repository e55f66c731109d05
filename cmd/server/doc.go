// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Command server runs the Reelmatch HTTP API.

Reelmatch recommends movies similar to a selected one from a precomputed
catalog and similarity matrix, and decorates each result with a poster and
rating fetched from OMDb.

Startup order:

 1. Configuration (koanf: defaults, config.yaml, environment, optional .env)
 2. Logging (zerolog)
 3. Catalog artifact load and validation
 4. Enrichment stack: OMDb client, circuit breaker, LRU memo, optional BadgerDB tier
 5. Chi router and HTTP server
 6. Supervisor tree: cache janitor and HTTP server

Any configuration or artifact error stops the process before the server
listens. SIGINT and SIGTERM trigger a graceful shutdown.

Example:

	export OMDB_API_KEY=your-key
	export CATALOG_PATH=./data/catalog.json
	./reelmatch-server
*/
package main
