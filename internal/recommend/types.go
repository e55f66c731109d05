// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("movie not found in catalog")

// NotFoundError reports a selected name that is not in the catalog.
// It is a caller contract violation and is never retried.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %q not found in catalog", e.Name)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ScoredCandidate is one catalog row with its combined score.
type ScoredCandidate struct {
	// RowIndex is the catalog and matrix index of the row.
	RowIndex int `json:"row_index"`

	// Score is ContentWeight*similarity + PopularityWeight*popularity.
	Score float64 `json:"score"`
}

// ScoredItem is a shortlisted catalog row.
type ScoredItem struct {
	// Item is the catalog row.
	Item catalog.Item `json:"item"`

	// Score is the combined score the row was ranked by.
	Score float64 `json:"score"`

	// Similarity is the content similarity to the selected movie.
	Similarity float64 `json:"similarity"`

	// Rank is the 1-based position in the shortlist.
	Rank int `json:"rank"`
}

// Response is the result of one recommendation call.
type Response struct {
	// Selected is the catalog row the shortlist was computed for.
	Selected catalog.Item `json:"selected"`

	// Items is the shortlist in descending score order.
	Items []ScoredItem `json:"items"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID        string    `json:"request_id,omitempty"`
	CatalogSize      int       `json:"catalog_size"`
	ContentWeight    float64   `json:"content_weight"`
	PopularityWeight float64   `json:"popularity_weight"`
	LatencyMS        int64     `json:"latency_ms"`
	Timestamp        time.Time `json:"timestamp"`
}

// ModelInfo describes how scores are produced, for display next to results.
type ModelInfo struct {
	Name             string  `json:"name"`
	Similarity       string  `json:"similarity"`
	Popularity       string  `json:"popularity"`
	Formula          string  `json:"formula"`
	ContentWeight    float64 `json:"content_weight"`
	PopularityWeight float64 `json:"popularity_weight"`
	ShortlistSize    int     `json:"shortlist_size"`
	CatalogSize      int     `json:"catalog_size"`
}

// Stats reports engine counters since start.
type Stats struct {
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
}
