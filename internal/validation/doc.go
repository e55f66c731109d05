// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation wraps go-playground/validator v10 behind a singleton.
//
// It is used for two things: API query parameters and catalog rows read from
// the static artifact. Both declare their rules as struct tags:
//
//	type recommendationQuery struct {
//	    Movie string `query:"movie" validate:"required,notblank,max=500"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    // verr.Error(), verr.Details()
//	}
package validation
