// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerSettings tunes the circuit breaker around a Provider.
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32        // trial requests allowed while half-open
	Interval         time.Duration // closed-state count reset period
	Timeout          time.Duration // open-state duration
	MinRequests      uint32
	FailureThreshold float64
}

// DefaultBreakerSettings opens after a 60% failure rate over at least 10
// requests, stays open 2 minutes, then allows 3 trial requests.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:             "omdb-api",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          2 * time.Minute,
		MinRequests:      10,
		FailureThreshold: 0.6,
	}
}

// BreakerProvider wraps a Provider with circuit breaker protection.
type BreakerProvider struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker[*Title]
	name   string
	logger zerolog.Logger
}

var _ Provider = (*BreakerProvider)(nil)

// NewBreakerProvider wraps next.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerProvider(next Provider, settings BreakerSettings, logger zerolog.Logger) *BreakerProvider {
	def := DefaultBreakerSettings()
	if settings.Name == "" {
		settings.Name = def.Name
	}
	if settings.MinRequests == 0 {
		settings.MinRequests = def.MinRequests
	}
	if settings.FailureThreshold <= 0 {
		settings.FailureThreshold = def.FailureThreshold
	}

	bp := &BreakerProvider{
		next:   next,
		name:   settings.Name,
		logger: logger.With().Str("component", "circuit_breaker").Str("breaker", settings.Name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(settings.Name).Set(0)

	bp.cb = gobreaker.NewCircuitBreaker[*Title](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= settings.FailureThreshold {
				bp.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("opening circuit")
				return true
			}
			return false
		},

		// A title OMDb does not know, or a caller that gave up, says nothing
		// about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrTitleUnavailable) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			bp.logger.Info().Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("state transition")
			metrics.RecordCircuitBreakerTransition(name, stateToString(from), stateToString(to), stateToFloat(to))
		},
	})

	return bp
}

// Lookup calls the wrapped provider unless the circuit is open.
func (b *BreakerProvider) Lookup(ctx context.Context, imdbID string) (*Title, error) {
	title, err := b.cb.Execute(func() (*Title, error) {
		return b.next.Lookup(ctx, imdbID)
	})

	switch {
	case err == nil:
		metrics.RecordCircuitBreakerRequest(b.name, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(b.name, "rejected")
	default:
		metrics.RecordCircuitBreakerRequest(b.name, "failure")
	}

	return title, err
}

// State returns the breaker state: closed, half-open or open.
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

// Counts returns the breaker's current window counts.
func (b *BreakerProvider) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
