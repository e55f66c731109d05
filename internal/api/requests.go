// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// MoviesRequest holds the validated query parameters for GET /movies.
//
// Fields:
//   - Query: case-insensitive substring filter (optional)
//   - Limit: maximum names returned, 0 for all
type MoviesRequest struct {
	Query string `query:"q" validate:"max=200"`
	Limit int    `query:"limit" validate:"min=0,max=10000"`
}

// RecommendationsRequest holds the validated query parameters for
// GET /recommendations. Enrich defaults to true.
type RecommendationsRequest struct {
	Movie  string `query:"movie" validate:"required,notblank,max=500"`
	Enrich bool   `query:"enrich"`
}

// paramError reports a query parameter that could not be parsed.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.value, e.name)
}

func parseMoviesRequest(r *http.Request) (MoviesRequest, error) {
	q := r.URL.Query()
	req := MoviesRequest{Query: strings.TrimSpace(q.Get("q"))}

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		return req, err
	}
	req.Limit = limit
	return req, nil
}

func parseRecommendationsRequest(r *http.Request) (RecommendationsRequest, error) {
	req := RecommendationsRequest{Movie: r.URL.Query().Get("movie")}

	enrich, err := getBoolParam(r, "enrich", true)
	if err != nil {
		return req, err
	}
	req.Enrich = enrich
	return req, nil
}

func getIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, &paramError{name: name, value: raw}
	}
	return v, nil
}

func getBoolParam(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, &paramError{name: name, value: raw}
	}
	return v, nil
}

// validateRequest writes a VALIDATION_ERROR response and returns false when
// req fails its rules.
func validateRequest(rw *ResponseWriter, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return false
	}
	return true
}
