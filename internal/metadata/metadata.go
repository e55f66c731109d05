// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"strings"
)

const (
	// PlaceholderPosterURL is shown when no poster is available.
	PlaceholderPosterURL = "https://via.placeholder.com/300x450?text=No+Poster"

	// NotAvailable is OMDb's marker for a missing field.
	NotAvailable = "N/A"
)

// Metadata is the display data attached to one catalog item.
type Metadata struct {
	PosterURL string `json:"poster_url"`
	Rating    string `json:"rating"`
}

// Fallback returns the degraded pair used when a lookup cannot succeed.
func Fallback() Metadata {
	return Metadata{PosterURL: PlaceholderPosterURL, Rating: NotAvailable}
}

// IsFallback reports whether m carries no real upstream data.
func (m Metadata) IsFallback() bool {
	return m == Fallback()
}

// MetadataFetcher is the lookup contract consumed by the enricher and the API.
type MetadataFetcher interface {
	Fetch(ctx context.Context, imdbID string) Metadata
}

// fromTitle normalizes an upstream record. posterNA is true when the poster
// was replaced by the placeholder.
func fromTitle(t *Title) (m Metadata, posterNA bool) {
	poster := strings.TrimSpace(t.Poster)
	if poster == "" || poster == NotAvailable {
		poster = PlaceholderPosterURL
		posterNA = true
	}

	rating := strings.TrimSpace(t.IMDbRating)
	if rating == "" {
		rating = NotAvailable
	}

	return Metadata{PosterURL: poster, Rating: rating}, posterNA
}
