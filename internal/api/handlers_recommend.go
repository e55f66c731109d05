// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommendation is one shortlisted movie as shown to clients.
type Recommendation struct {
	MovieDetail
	Score      float64 `json:"score"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

// RecommendationsResponse is the body of GET /recommendations.
type RecommendationsResponse struct {
	Selected        catalog.Item     `json:"selected"`
	Recommendations []Recommendation `json:"recommendations"`
	Enriched        bool             `json:"enriched"`
}

// Recommendations ranks the catalog against ?movie= and returns the shortlist.
// Enrichment runs unless ?enrich=false; a failed lookup degrades that one
// entry to placeholders and never fails the request.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	req, err := parseRecommendationsRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req.Movie)
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			metrics.RecordRecommendation(false, time.Since(start))
			rw.NotFound(err.Error())
			return
		}
		rw.InternalError("failed to rank catalog", err)
		return
	}

	out := RecommendationsResponse{
		Selected:        resp.Selected,
		Recommendations: make([]Recommendation, len(resp.Items)),
		Enriched:        req.Enrich,
	}
	for i, s := range resp.Items {
		out.Recommendations[i] = Recommendation{
			MovieDetail: MovieDetail{Item: s.Item},
			Score:       s.Score,
			Similarity:  s.Similarity,
			Rank:        s.Rank,
		}
	}

	if req.Enrich {
		items := make([]catalog.Item, len(resp.Items))
		for i, s := range resp.Items {
			items[i] = s.Item
		}
		for i, res := range h.enricher.Enrich(r.Context(), items) {
			out.Recommendations[i].PosterURL = res.Metadata.PosterURL
			out.Recommendations[i].Rating = res.Metadata.Rating
		}
	}

	metrics.RecordRecommendation(true, time.Since(start))
	rw.SuccessWithCount(out, len(out.Recommendations))
}
