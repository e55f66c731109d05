// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics defines the Prometheus metrics exported at /metrics.

All metrics are registered on the default registry through promauto and
carry the reelmatch_ prefix.

# Available Metrics

API:
  - reelmatch_api_requests_total{method,endpoint,status}
  - reelmatch_api_request_duration_seconds{method,endpoint}
  - reelmatch_api_active_requests
  - reelmatch_api_rate_limit_hits_total{endpoint}

Ranking:
  - reelmatch_recommendations_total{result}: ok or not_found
  - reelmatch_recommendation_duration_seconds
  - reelmatch_catalog_items

Metadata enrichment:
  - reelmatch_metadata_lookups_total{result}: success, failure,
    fallback_empty_id, poster_na
  - reelmatch_metadata_lookup_duration_seconds
  - reelmatch_cache_hits_total{tier}, reelmatch_cache_misses_total{tier}:
    tier is memory or persistent
  - reelmatch_cache_size

Circuit breaker:
  - reelmatch_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - reelmatch_circuit_breaker_requests_total{name,result}
  - reelmatch_circuit_breaker_transitions_total{name,from,to}

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, name)
	metrics.RecordRecommendation(err == nil, time.Since(start))
*/
package metrics
