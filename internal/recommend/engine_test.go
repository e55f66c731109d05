// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
)

const epsilon = 1e-9

func newTestEngine(t *testing.T, names []string, pop []float64, sim [][]float64) *Engine {
	t.Helper()

	items := make([]catalog.Item, len(names))
	for i, name := range names {
		items[i] = catalog.Item{
			ID:              fmt.Sprintf("tt%02d", i),
			Name:            name,
			Year:            2000 + i,
			Genre:           "Drama",
			PopularityScore: pop[i],
		}
	}

	cat, err := catalog.New(items, sim)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	engine, err := NewEngine(cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// scenarioEngine builds the six-movie catalog A..F where only row A's
// similarities matter.
func scenarioEngine(t *testing.T) *Engine {
	t.Helper()

	names := []string{"A", "B", "C", "D", "E", "F"}
	pop := []float64{0.5, 0.2, 0.9, 0.1, 0.99, 0.0}
	sim := identity(6)
	sim[0] = []float64{1.0, 0.9, 0.1, 0.8, 0.05, 0.95}
	return newTestEngine(t, names, pop, sim)
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func shortlistNames(resp *Response) []string {
	out := make([]string, len(resp.Items))
	for i, item := range resp.Items {
		out[i] = item.Item.Name
	}
	return out
}

func TestNewEngine_NilCatalog(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil) expected error")
	}
}

func TestCombinedScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sim, pop, want float64
	}{
		{sim: 1.0, pop: 0.5, want: 0.85},
		{sim: 0.9, pop: 0.2, want: 0.69},
		{sim: 0.1, pop: 0.9, want: 0.34},
		{sim: 0.8, pop: 0.1, want: 0.59},
		{sim: 0.05, pop: 0.99, want: 0.332},
		{sim: 0.95, pop: 0.0, want: 0.665},
		{sim: 0, pop: 0, want: 0},
	}

	for _, tt := range tests {
		if got := CombinedScore(tt.sim, tt.pop); math.Abs(got-tt.want) > epsilon {
			t.Errorf("CombinedScore(%v, %v) = %v, want %v", tt.sim, tt.pop, got, tt.want)
		}
	}
}

func TestRecommend_SixMovieScenario(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)

	resp, err := engine.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := []string{"B", "F", "D", "C", "E"}
	got := shortlistNames(resp)
	if len(got) != len(want) {
		t.Fatalf("shortlist = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("shortlist = %v, want %v", got, want)
			break
		}
	}

	wantScores := []float64{0.69, 0.665, 0.59, 0.34, 0.332}
	for i, item := range resp.Items {
		if math.Abs(item.Score-wantScores[i]) > epsilon {
			t.Errorf("%s score = %v, want %v", item.Item.Name, item.Score, wantScores[i])
		}
		if item.Rank != i+1 {
			t.Errorf("%s rank = %d, want %d", item.Item.Name, item.Rank, i+1)
		}
	}

	if resp.Selected.Name != "A" {
		t.Errorf("Selected = %q, want A", resp.Selected.Name)
	}
	if resp.Metadata.CatalogSize != 6 {
		t.Errorf("CatalogSize = %d, want 6", resp.Metadata.CatalogSize)
	}
	if resp.Metadata.ContentWeight != ContentWeight || resp.Metadata.PopularityWeight != PopularityWeight {
		t.Error("metadata should report the fixed weights")
	}
}

func TestRecommend_ScoresMatchRecomputation(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)
	cat := engine.Catalog()

	for _, name := range engine.Names() {
		resp, err := engine.Recommend(context.Background(), name)
		if err != nil {
			t.Fatalf("Recommend(%q) error = %v", name, err)
		}

		if len(resp.Items) > ShortlistSize {
			t.Errorf("Recommend(%q) returned %d items", name, len(resp.Items))
		}

		i := resp.Selected.RowIndex
		for k, item := range resp.Items {
			j := item.Item.RowIndex
			want := 0.7*cat.Similarity(i, j) + 0.3*cat.Item(j).PopularityScore
			if math.Abs(item.Score-want) > epsilon {
				t.Errorf("%s->%s score = %v, recomputed %v", name, item.Item.Name, item.Score, want)
			}
			if item.Similarity != cat.Similarity(i, j) {
				t.Errorf("%s->%s similarity = %v", name, item.Item.Name, item.Similarity)
			}
			if k > 0 && resp.Items[k-1].Score < item.Score {
				t.Errorf("Recommend(%q) not sorted descending at %d", name, k)
			}
		}
	}
}

func TestRecommend_NotFound(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)

	resp, err := engine.Recommend(context.Background(), "Z")
	if resp != nil {
		t.Errorf("Recommend(Z) returned response %+v", resp)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Recommend(Z) error = %v, want ErrNotFound", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "Z" {
		t.Errorf("error = %#v, want *NotFoundError{Name: Z}", err)
	}

	// Names are exact matches
	if _, err := engine.Recommend(context.Background(), "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Recommend(a) error = %v, want ErrNotFound", err)
	}

	if stats := engine.Stats(); stats.Requests != 2 || stats.NotFound != 2 {
		t.Errorf("Stats() = %+v, want 2 requests, 2 not found", stats)
	}
}

func TestRecommend_SingleItemCatalog(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, []string{"Only"}, []float64{0.4}, [][]float64{{1}})

	resp, err := engine.Recommend(context.Background(), "Only")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", resp.Items)
	}
}

func TestRecommend_SmallCatalogReturnsRemainder(t *testing.T) {
	t.Parallel()

	sim := [][]float64{
		{1.0, 0.4, 0.2},
		{0.4, 1.0, 0.6},
		{0.2, 0.6, 1.0},
	}
	engine := newTestEngine(t, []string{"X", "Y", "Z"}, []float64{0.1, 0.2, 0.3}, sim)

	resp, err := engine.Recommend(context.Background(), "X")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	got := shortlistNames(resp)
	if len(got) != 2 || got[0] != "Y" || got[1] != "Z" {
		t.Errorf("shortlist = %v, want [Y Z]", got)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	names := []string{"Self", "P", "Q", "R", "S", "T", "U", "V"}
	pop := make([]float64, len(names))
	sim := identity(len(names))
	sim[0] = []float64{1, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	engine := newTestEngine(t, names, pop, sim)

	resp, err := engine.Recommend(context.Background(), "Self")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := []string{"P", "Q", "R", "S", "T"}
	got := shortlistNames(resp)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shortlist = %v, want %v", got, want)
		}
	}
}

func TestRecommend_DropsTopRankedRowEvenWhenNotSelected(t *testing.T) {
	t.Parallel()

	// B outranks the selected movie A: 0.7*1.0 + 0.3*1.0 = 1.0 > 0.7*0.5 + 0 = 0.35.
	// Rank 1 (B) is dropped and A survives into its own shortlist.
	sim := [][]float64{
		{0.5, 1.0, 0.1},
		{1.0, 1.0, 0.1},
		{0.1, 0.1, 1.0},
	}
	engine := newTestEngine(t, []string{"A", "B", "C"}, []float64{0, 1, 0}, sim)

	resp, err := engine.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	got := shortlistNames(resp)
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("shortlist = %v, want [A C]", got)
	}
}

func TestRecommend_SelfTieDropsEarlierRow(t *testing.T) {
	t.Parallel()

	// Selecting B: A and B both score 0.7. The stable sort puts row 0 (A)
	// first, so A is dropped and B appears in its own shortlist.
	sim := [][]float64{
		{1.0, 0.2, 0.9},
		{1.0, 1.0, 0.3},
		{0.9, 0.3, 1.0},
	}
	engine := newTestEngine(t, []string{"A", "B", "C"}, []float64{0, 0, 0}, sim)

	ranked, err := engine.Rank("B")
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("Rank() returned %d candidates, want all 3", len(ranked))
	}
	if ranked[0].RowIndex != 0 || ranked[1].RowIndex != 1 {
		t.Errorf("ranked rows = %v, want A before B on tie", ranked)
	}

	resp, err := engine.Recommend(context.Background(), "B")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	got := shortlistNames(resp)
	if len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("shortlist = %v, want [B C]", got)
	}

	if _, err := engine.Rank("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rank(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRecommend_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)
	ctx := logging.ContextWithRequestID(context.Background(), "req-123")

	resp, err := engine.Recommend(ctx, "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", resp.Metadata.RequestID)
	}
}

func TestEngine_ModelInfoAndNames(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)

	info := engine.ModelInfo()
	if info.ContentWeight != 0.7 || info.PopularityWeight != 0.3 {
		t.Errorf("weights = %v/%v", info.ContentWeight, info.PopularityWeight)
	}
	if info.ShortlistSize != 5 || info.CatalogSize != 6 {
		t.Errorf("ShortlistSize/CatalogSize = %d/%d", info.ShortlistSize, info.CatalogSize)
	}
	if info.Formula == "" {
		t.Error("Formula should be set")
	}

	names := engine.Names()
	if len(names) != 6 || names[0] != "A" || names[5] != "F" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRecommend_ConcurrentUse(t *testing.T) {
	t.Parallel()

	engine := scenarioEngine(t)

	done := make(chan error, 20)
	for g := 0; g < 20; g++ {
		go func() {
			resp, err := engine.Recommend(context.Background(), "A")
			if err == nil && resp.Items[0].Item.Name != "B" {
				err = fmt.Errorf("first item = %s", resp.Items[0].Item.Name)
			}
			done <- err
		}()
	}
	for g := 0; g < 20; g++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
