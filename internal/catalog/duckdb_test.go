// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"testing"
)

const csvCatalog = `id,name,year,genre,popularity_score
tt0112870,Dilwale Dulhania Le Jayenge,1995,Romance,0.42
tt0073707,Sholay,1975,Action,0.10
tt0169102,Lagaan,2001,Sport,0.60
`

const csvMatrix = `1.0,0.2,0.4
0.2,1.0,0.3
0.4,0.3,1.0
`

func TestLoad_CSVViaDuckDB(t *testing.T) {
	dir := t.TempDir()
	src := Source{
		Path:           writeFile(t, dir, "catalog.csv", csvCatalog),
		SimilarityPath: writeFile(t, dir, "similarity.csv", csvMatrix),
	}

	c, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	wantNames := []string{"Dilwale Dulhania Le Jayenge", "Sholay", "Lagaan"}
	for i, name := range wantNames {
		if got := c.Item(i).Name; got != name {
			t.Errorf("Item(%d).Name = %q, want %q (row order must be preserved)", i, got, name)
		}
	}

	lagaan := c.Item(2)
	if lagaan.ID != "tt0169102" || lagaan.Year != 2001 || lagaan.Genre != "Sport" || lagaan.PopularityScore != 0.6 {
		t.Errorf("Lagaan = %+v", lagaan)
	}
	if got := c.Similarity(1, 2); got != 0.3 {
		t.Errorf("Similarity(1,2) = %v, want 0.3", got)
	}
}

func TestLoad_CSVMatrixMisaligned(t *testing.T) {
	dir := t.TempDir()
	src := Source{
		Path:           writeFile(t, dir, "catalog.csv", csvCatalog),
		SimilarityPath: writeFile(t, dir, "similarity.csv", "1.0,0.2\n0.2,1.0\n"),
	}

	_, err := Load(context.Background(), src)
	if err == nil {
		t.Fatal("Load() expected error for misaligned matrix")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error %T is not *ConfigurationError", err)
	}
	if cfgErr.Field != "similarity" {
		t.Errorf("Field = %q, want similarity", cfgErr.Field)
	}
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     interface{}
		want   float64
		wantOK bool
	}{
		{in: 0.25, want: 0.25, wantOK: true},
		{in: float32(0.5), want: 0.5, wantOK: true},
		{in: int64(1), want: 1, wantOK: true},
		{in: int32(0), want: 0, wantOK: true},
		{in: true, want: 1, wantOK: true},
		{in: " 0.75 ", want: 0.75, wantOK: true},
		{in: "abc", wantOK: false},
		{in: nil, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := toFloat(tt.in)
		if ok != tt.wantOK {
			t.Errorf("toFloat(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("toFloat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTableFunc_EscapesQuotes(t *testing.T) {
	t.Parallel()

	got := tableFunc(FormatCSV, "/tmp/o'brien.csv", true)
	want := "read_csv('/tmp/o''brien.csv', header = false)"
	if got != want {
		t.Errorf("tableFunc() = %q, want %q", got, want)
	}

	if got := tableFunc(FormatParquet, "a.parquet", false); got != "read_parquet('a.parquet')" {
		t.Errorf("tableFunc(parquet) = %q", got)
	}
}
