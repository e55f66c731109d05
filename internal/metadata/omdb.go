// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
omdb.go - OMDb REST API Client

Fetches a title by IMDb ID: GET {baseURL}?apikey=KEY&i=ID

API Reference: https://www.omdbapi.com/
*/

package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/logging"
)

const (
	// DefaultBaseURL is the public OMDb endpoint.
	DefaultBaseURL = "https://www.omdbapi.com/"

	// DefaultTimeout bounds one lookup.
	DefaultTimeout = 5 * time.Second

	// maxResponseBytes caps how much of a response body is decoded.
	maxResponseBytes = 1 << 20
)

// ErrTitleUnavailable is returned when OMDb answers Response:"False".
var ErrTitleUnavailable = errors.New("omdb: title unavailable")

// Provider looks up one title by IMDb ID.
// OMDbClient and BreakerProvider implement it.
type Provider interface {
	Lookup(ctx context.Context, imdbID string) (*Title, error)
}

var _ Provider = (*OMDbClient)(nil)

// Title is the subset of the OMDb title record Reelmatch reads.
type Title struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDbID     string `json:"imdbID"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// LookupError describes a failed lookup. URL is always redacted.
type LookupError struct {
	IMDbID     string
	URL        string
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("omdb lookup %s: status %d", e.IMDbID, e.StatusCode)
	}
	return fmt.Sprintf("omdb lookup %s: %v", e.IMDbID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ClientConfig configures an OMDbClient.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit float64 // requests per second; <= 0 disables limiting
	RateBurst int
}

// OMDbClient provides access to the OMDb REST API.
type OMDbClient struct {
	baseURL    *url.URL
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewOMDbClient creates a new OMDb API client.
//
// Parameters:
//   - cfg.BaseURL: OMDb endpoint, defaults to DefaultBaseURL
//   - cfg.APIKey: OMDb API key, required
//   - cfg.Timeout: per-lookup timeout, defaults to 5s
func NewOMDbClient(cfg ClientConfig) (*OMDbClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("omdb api key is required")
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse omdb base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("omdb base url must be http or https, got %q", u.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	burst := cfg.RateBurst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		if burst <= 0 {
			burst = 1
		}
	}

	return &OMDbClient{
		baseURL: u,
		apiKey:  cfg.APIKey,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// Lookup fetches the title record for imdbID.
func (c *OMDbClient) Lookup(ctx context.Context, imdbID string) (*Title, error) {
	reqURL := c.requestURL(imdbID)
	redacted := logging.RedactURL(reqURL)

	// The timeout covers the limiter wait as well as the request.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &LookupError{IMDbID: imdbID, URL: redacted, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &LookupError{IMDbID: imdbID, URL: redacted, Err: redactURLError(err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{IMDbID: imdbID, URL: redacted, Err: redactURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &LookupError{
			IMDbID:     imdbID,
			URL:        redacted,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var title Title
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&title); err != nil {
		return nil, &LookupError{IMDbID: imdbID, URL: redacted, Err: fmt.Errorf("decode response: %w", redactURLError(err))}
	}

	if strings.EqualFold(title.Response, "False") {
		return nil, &LookupError{IMDbID: imdbID, URL: redacted, Err: fmt.Errorf("%w: %s", ErrTitleUnavailable, title.Error)}
	}

	return &title, nil
}

func (c *OMDbClient) requestURL(imdbID string) string {
	u := *c.baseURL
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("i", imdbID)
	u.RawQuery = q.Encode()
	return u.String()
}

// redactURLError masks the URL inside a *url.Error while keeping the chain
// intact for errors.Is checks on context.DeadlineExceeded.
func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return &url.Error{Op: ue.Op, URL: logging.RedactURL(ue.URL), Err: ue.Err}
	}
	return err
}
