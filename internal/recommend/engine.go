// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
)

const (
	// ContentWeight is the share of the combined score taken from similarity.
	ContentWeight = 0.7

	// PopularityWeight is the share of the combined score taken from popularity.
	PopularityWeight = 0.3

	// ShortlistSize is the maximum number of recommendations returned.
	ShortlistSize = 5
)

// Engine ranks catalog rows by similarity to a selected movie.
// It performs no I/O and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
}

// NewEngine creates an engine over an already validated catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	return &Engine{
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// CombinedScore blends a similarity and a popularity value with the fixed weights.
func CombinedScore(similarity, popularity float64) float64 {
	return ContentWeight*similarity + PopularityWeight*popularity
}

// Recommend returns up to ShortlistSize movies similar to selectedName.
//
// Every row, including the selected one, is scored with CombinedScore and
// stably sorted descending, so equal scores keep catalog order. The top-ranked
// row is then dropped and the next ShortlistSize rows are returned.
//
// The dropped row is whichever ranks first, not the selected row by identity.
// Normally that is the selected movie, since its self-similarity is maximal.
// If another row ties with or beats the selected row's self-score, that other
// row is dropped and the selected movie can appear in its own shortlist.
// Callers that need strict self-exclusion must filter on Selected.RowIndex.
//
// An unknown name returns a *NotFoundError.
func (e *Engine) Recommend(ctx context.Context, selectedName string) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	logger := e.requestLogger(ctx)

	selected, ok := e.catalog.Lookup(selectedName)
	if !ok {
		e.notFoundCount.Add(1)
		logger.Debug().Str("movie", selectedName).Msg("selected movie not in catalog")
		return nil, &NotFoundError{Name: selectedName}
	}

	ranked := e.rank(selected.RowIndex)
	shortlist := selectShortlist(ranked)

	items := make([]ScoredItem, len(shortlist))
	for k, cand := range shortlist {
		items[k] = ScoredItem{
			Item:       e.catalog.Item(cand.RowIndex),
			Score:      cand.Score,
			Similarity: e.catalog.Similarity(selected.RowIndex, cand.RowIndex),
			Rank:       k + 1,
		}
	}

	resp := &Response{
		Selected: selected,
		Items:    items,
		Metadata: ResponseMetadata{
			RequestID:        logging.RequestIDFromContext(ctx),
			CatalogSize:      e.catalog.Len(),
			ContentWeight:    ContentWeight,
			PopularityWeight: PopularityWeight,
			LatencyMS:        time.Since(start).Milliseconds(),
			Timestamp:        time.Now().UTC(),
		},
	}

	logger.Debug().
		Str("movie", selectedName).
		Int("row", selected.RowIndex).
		Int("returned", len(items)).
		Msg("recommendation complete")

	return resp, nil
}

// Rank scores every catalog row against selectedName and returns them all in
// ranked order, before rank 1 is dropped. Used for diagnostics and tooling.
func (e *Engine) Rank(selectedName string) ([]ScoredCandidate, error) {
	i, ok := e.catalog.Index(selectedName)
	if !ok {
		return nil, &NotFoundError{Name: selectedName}
	}
	return e.rank(i), nil
}

func (e *Engine) rank(i int) []ScoredCandidate {
	n := e.catalog.Len()
	candidates := make([]ScoredCandidate, n)
	for j := 0; j < n; j++ {
		candidates[j] = ScoredCandidate{
			RowIndex: j,
			Score:    CombinedScore(e.catalog.Similarity(i, j), e.catalog.Item(j).PopularityScore),
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	return candidates
}

// selectShortlist drops rank 1 and keeps the next ShortlistSize candidates.
func selectShortlist(ranked []ScoredCandidate) []ScoredCandidate {
	if len(ranked) <= 1 {
		return []ScoredCandidate{}
	}
	rest := ranked[1:]
	if len(rest) > ShortlistSize {
		rest = rest[:ShortlistSize]
	}
	return rest
}

// Names returns the selection surface: every catalog name, sorted.
func (e *Engine) Names() []string {
	return e.catalog.Names()
}

// Catalog returns the catalog the engine ranks over.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ModelInfo describes the scoring model.
func (e *Engine) ModelInfo() ModelInfo {
	return ModelInfo{
		Name:             "content-popularity hybrid",
		Similarity:       "cosine similarity of TF-IDF vectors built from each movie's descriptive text, precomputed offline",
		Popularity:       "recency-biased popularity score normalized to [0,1], precomputed offline",
		Formula:          "score = 0.7 * similarity + 0.3 * popularity",
		ContentWeight:    ContentWeight,
		PopularityWeight: PopularityWeight,
		ShortlistSize:    ShortlistSize,
		CatalogSize:      e.catalog.Len(),
	}
}

// Stats returns request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		NotFound: e.notFoundCount.Load(),
	}
}

func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return e.logger.With().Str("request_id", id).Logger()
	}
	return e.logger
}
