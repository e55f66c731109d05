// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metadata enriches catalog items with a poster URL and a rating
fetched from the OMDb API.

# Lookup Path

FetchMetadata never fails. It resolves an IMDb ID through, in order:

 1. an empty-ID short circuit returning the fallback pair
 2. the in-memory TTL LRU memo (internal/cache)
 3. the optional BadgerDB store, promoting hits into the memo
 4. the provider: OMDbClient behind a gobreaker circuit breaker

Successful lookups are written to both tiers. Failures of any kind return
the fallback pair (PlaceholderPosterURL, "N/A") and are never cached, so the
next request retries upstream.

Concurrent lookups of the same ID share a single upstream call.

# Secrets

The OMDb API key travels only in the request URL. Every URL and error that
reaches a log line passes through logging.RedactURL or logging.SanitizeError.

# Enrichment

Enricher.Enrich fans out lookups for a shortlist with a bounded errgroup and
writes each result at its input index, so output order always matches the
ranking order.
*/
package metadata
