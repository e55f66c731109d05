// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

type queryStruct struct {
	Movie string  `query:"movie" validate:"required,notblank,max=20"`
	Limit int     `json:"limit" validate:"min=0,max=100"`
	Score float64 `json:"score" validate:"gte=0,lte=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     queryStruct
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: queryStruct{Movie: "Sholay", Limit: 10, Score: 0.5},
		},
		{
			name:      "missing movie",
			input:     queryStruct{Limit: 10},
			wantField: "movie",
			wantTag:   "required",
			wantMsg:   "movie is required",
		},
		{
			name:      "blank movie",
			input:     queryStruct{Movie: "   "},
			wantField: "movie",
			wantTag:   "notblank",
			wantMsg:   "movie must not be blank",
		},
		{
			name:      "movie too long",
			input:     queryStruct{Movie: strings.Repeat("x", 21)},
			wantField: "movie",
			wantTag:   "max",
			wantMsg:   "movie must be at most 20 characters",
		},
		{
			name:      "limit too large",
			input:     queryStruct{Movie: "Don", Limit: 101},
			wantField: "limit",
			wantTag:   "max",
			wantMsg:   "limit must be at most 100",
		},
		{
			name:      "score above one",
			input:     queryStruct{Movie: "Don", Score: 1.5},
			wantField: "score",
			wantTag:   "lte",
			wantMsg:   "score must be less than or equal to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() unexpected error = %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if errs[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.wantTag)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", verr.Error(), tt.wantMsg)
			}
			if details := verr.Details(); details["field"] != tt.wantField {
				t.Errorf("Details()[field] = %v, want %q", details["field"], tt.wantField)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&queryStruct{Limit: -1, Score: 2})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 3 {
		t.Errorf("got %d errors, want 3", len(verr.Errors()))
	}
	if _, ok := verr.Details()["fields"]; !ok {
		t.Error("Details() should list fields for multiple errors")
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
}
