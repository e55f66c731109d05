// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the similar-movie ranking engine.
//
// # Scoring
//
// For a selected movie at row i, every catalog row j receives
//
//	score(j) = 0.7 * similarity[i][j] + 0.3 * popularity[j]
//
// The weights are fixed constants. Similarity and popularity are both
// precomputed offline and loaded from the static artifact; nothing here
// learns or updates at serving time.
//
// # Selection
//
// Rows are stably sorted by score (ties keep catalog order), the first row is
// dropped, and the next five form the shortlist. See Engine.Recommend for the
// consequences of dropping by rank rather than by identity.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, logger)
//	resp, err := engine.Recommend(ctx, "Sholay")
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // selection was not drawn from engine.Names()
//	}
package recommend
