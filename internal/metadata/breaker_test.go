// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerProvider_OpensOnFailures(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(nil)
	p.err = errors.New("upstream down")

	settings := DefaultBreakerSettings()
	settings.Name = "test-opens"
	b := NewBreakerProvider(p, settings, zerolog.Nop())

	for i := 0; i < 10; i++ {
		_, _ = b.Lookup(context.Background(), "tt1")
	}
	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	_, err := b.Lookup(context.Background(), "tt1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Lookup() while open error = %v, want ErrOpenState", err)
	}
	if got := p.callCount("tt1"); got != 10 {
		t.Errorf("provider calls = %d, want 10", got)
	}
}

func TestBreakerProvider_UnknownTitlesDoNotTrip(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(map[string]*Title{})
	settings := DefaultBreakerSettings()
	settings.Name = "test-unknown"
	b := NewBreakerProvider(p, settings, zerolog.Nop())

	for i := 0; i < 20; i++ {
		_, err := b.Lookup(context.Background(), "tt-missing")
		if !errors.Is(err, ErrTitleUnavailable) {
			t.Fatalf("Lookup() error = %v, want ErrTitleUnavailable", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed", b.State())
	}
}

func TestBreakerProvider_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(map[string]*Title{"tt1": {Poster: "p", IMDbRating: "1"}})
	p.err = errors.New("boom")

	b := NewBreakerProvider(p, BreakerSettings{
		Name:        "test-recovery",
		MaxRequests: 1,
		Timeout:     20 * time.Millisecond,
		MinRequests: 2,
	}, zerolog.Nop())

	_, _ = b.Lookup(context.Background(), "tt1")
	_, _ = b.Lookup(context.Background(), "tt1")
	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	time.Sleep(40 * time.Millisecond)
	p.mu.Lock()
	p.err = nil
	p.mu.Unlock()

	if _, err := b.Lookup(context.Background(), "tt1"); err != nil {
		t.Fatalf("half-open Lookup() error = %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed after successful trial request", b.State())
	}
}
