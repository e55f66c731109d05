// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/auth"
	"github.com/tomtom215/reelmatch/internal/metadata"
)

const testArtifact = `{
  "items": [
    {"id": "tt0000001", "name": "Alpha", "year": 2001, "genre": "Drama", "popularity_score": 0.2},
    {"id": "tt0000002", "name": "Bravo", "year": 2002, "genre": "Action", "popularity_score": 0.9},
    {"id": "tt0000003", "name": "Charlie", "year": 2003, "genre": "Comedy", "popularity_score": 0.4},
    {"id": "", "name": "Delta", "year": 2004, "genre": "Romance", "popularity_score": 0.1}
  ],
  "similarity": [
    [1.0, 0.5, 0.8, 0.1],
    [0.5, 1.0, 0.2, 0.3],
    [0.8, 0.2, 1.0, 0.6],
    [0.1, 0.3, 0.6, 1.0]
  ]
}`

const testSecret = "0123456789abcdef0123456789abcdef"

// isolate points configuration at a temp catalog and clears layers that
// could leak in from the developer's environment.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte(testArtifact), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	t.Setenv("SECRETS_FILE", "")
	t.Setenv("CATALOG_PATH", path)
	t.Setenv("SIMILARITY_PATH", "")
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("ADMIN_JWT_SECRET", "")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	isolate(t)

	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "catalog OK: 4 items") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "1 items have no external id") {
		t.Errorf("missing-id note absent: %q", out)
	}
}

func TestValidate_BadCatalog(t *testing.T) {
	isolate(t)

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"items":[{"name":"A","popularity_score":2}],"similarity":[[1]]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "validate", "--catalog", bad); err == nil {
		t.Fatal("validate expected error for popularity out of range")
	}
}

func TestNames(t *testing.T) {
	isolate(t)

	out, err := run(t, "names")
	if err != nil {
		t.Fatalf("names error = %v", err)
	}
	if out != "Alpha\nBravo\nCharlie\nDelta\n" {
		t.Errorf("names output = %q", out)
	}

	out, err = run(t, "names", "--q", "RAV")
	if err != nil {
		t.Fatalf("names --q error = %v", err)
	}
	if out != "Bravo\n" {
		t.Errorf("filtered output = %q", out)
	}

	if _, err := run(t, "names", "--limit", "-1"); err == nil {
		t.Error("negative limit should fail")
	}
}

func TestRecommend_JSON(t *testing.T) {
	isolate(t)

	out, err := run(t, "recommend", "Alpha", "--json")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}

	var got recommendOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}

	// Alpha scores: self 0.76, Charlie 0.68, Bravo 0.62, Delta 0.10
	wantOrder := []string{"Charlie", "Bravo", "Delta"}
	if len(got.Recommendations) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d", len(got.Recommendations), len(wantOrder))
	}
	for k, name := range wantOrder {
		r := got.Recommendations[k]
		if r.Name != name || r.Rank != k+1 {
			t.Errorf("rec[%d] = %s rank %d, want %s rank %d", k, r.Name, r.Rank, name, k+1)
		}
		if r.PosterURL != "" || r.Rating != "" {
			t.Errorf("rec[%d] carries metadata without --enrich", k)
		}
	}
	if got.Selected.Name != "Alpha" || got.Enriched {
		t.Errorf("selected = %+v enriched = %v", got.Selected, got.Enriched)
	}
}

func TestRecommend_Table(t *testing.T) {
	isolate(t)

	out, err := run(t, "recommend", "Alpha")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}
	if !strings.HasPrefix(out, "Because you picked Alpha (2001):") {
		t.Errorf("header missing: %q", out)
	}
	if !strings.Contains(out, "RANK") || !strings.Contains(out, "Charlie") {
		t.Errorf("table missing rows: %q", out)
	}
}

func TestRecommend_All(t *testing.T) {
	isolate(t)

	out, err := run(t, "recommend", "Alpha", "--all")
	if err != nil {
		t.Fatalf("recommend --all error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header plus 4 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Alpha") {
		t.Errorf("rank 1 should be the selected movie, got %q", lines[1])
	}
}

func TestRecommend_UnknownMovie(t *testing.T) {
	isolate(t)

	_, err := run(t, "recommend", "Zulu")
	if err == nil || !strings.Contains(err.Error(), "Zulu") {
		t.Errorf("error = %v, want not-found naming the movie", err)
	}
}

func TestRecommend_EnrichRequiresKey(t *testing.T) {
	isolate(t)

	if _, err := run(t, "recommend", "Alpha", "--enrich"); err == nil {
		t.Fatal("--enrich without OMDB_API_KEY should fail")
	}
}

func TestRecommend_Enrich(t *testing.T) {
	isolate(t)

	// Hold the store open the way a running server does.
	storePath := t.TempDir()
	store, err := metadata.NewBadgerStore(storePath, time.Hour)
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	defer func() { _ = store.Close() }()
	t.Setenv("METADATA_STORE_PATH", storePath)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		id := r.URL.Query().Get("i")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","imdbID":"` + id + `","Poster":"https://img.example/` + id + `.jpg","imdbRating":"7.1"}`))
	}))
	defer srv.Close()

	t.Setenv("OMDB_API_KEY", "test-key")
	t.Setenv("OMDB_BASE_URL", srv.URL)
	t.Setenv("OMDB_RATE_LIMIT", "0")

	out, err := run(t, "recommend", "Alpha", "--enrich", "--json")
	if err != nil {
		t.Fatalf("recommend --enrich error = %v", err)
	}

	var got recommendOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !got.Enriched {
		t.Error("Enriched = false")
	}

	byName := map[string]recommendation{}
	for _, r := range got.Recommendations {
		byName[r.Name] = r
	}
	if r := byName["Charlie"]; r.PosterURL != "https://img.example/tt0000003.jpg" || r.Rating != "7.1" {
		t.Errorf("Charlie = %+v", r)
	}
	// Delta has no id and never reaches the upstream
	if r := byName["Delta"]; r.Rating != "N/A" {
		t.Errorf("Delta rating = %q, want N/A", r.Rating)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("upstream calls = %d, want 2", n)
	}
}

func TestExport(t *testing.T) {
	isolate(t)

	dest := filepath.Join(t.TempDir(), "out.json")
	out, err := run(t, "export", "--out", dest)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "wrote 4 items") {
		t.Errorf("output = %q", out)
	}

	// the exported artifact must load back
	if _, err := run(t, "validate", "--catalog", dest); err != nil {
		t.Errorf("validate exported artifact: %v", err)
	}

	if _, err := run(t, "export"); err == nil {
		t.Error("export without --out should fail")
	}
}

func TestAdminToken(t *testing.T) {
	isolate(t)

	if _, err := run(t, "admin-token", "--user", "ops"); err == nil {
		t.Fatal("admin-token without secret should fail")
	}

	t.Setenv("ADMIN_JWT_SECRET", testSecret)

	if _, err := run(t, "admin-token"); err == nil {
		t.Error("admin-token without --user should fail")
	}

	out, err := run(t, "admin-token", "--user", "ops")
	if err != nil {
		t.Fatalf("admin-token error = %v", err)
	}

	m, err := auth.NewJWTManager(testSecret, 0)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := m.ValidateToken(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Username != "ops" || claims.Role != auth.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}
