// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/metadata"
)

// MovieDetail is one catalog row with its enrichment.
type MovieDetail struct {
	catalog.Item
	PosterURL string `json:"poster_url"`
	Rating    string `json:"rating"`
}

// ListMovies returns the sorted selection surface, optionally filtered by
// a case-insensitive substring.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseMoviesRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	names := h.engine.Catalog().Search(req.Query, req.Limit)
	rw.SuccessWithCount(names, len(names))
}

// GetMovie returns one catalog row by exact name, enriched.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name, err := pathParam(r, "name")
	if err != nil {
		rw.BadRequest("invalid movie name encoding")
		return
	}
	item, ok := h.engine.Catalog().Lookup(name)
	if !ok {
		rw.NotFound("movie not found in catalog")
		return
	}

	rw.Success(newMovieDetail(item, h.metadata.Fetch(r.Context(), item.ID)))
}

func newMovieDetail(item catalog.Item, md metadata.Metadata) MovieDetail {
	return MovieDetail{Item: item, PosterURL: md.PosterURL, Rating: md.Rating}
}

// pathParam returns a decoded URL parameter. chi matches on RawPath when the
// client escaped characters such as ',' or '/', leaving the value encoded.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
