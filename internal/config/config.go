// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned when no OMDb API key is configured.
var ErrMissingAPIKey = errors.New("OMDB_API_KEY is required")

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  0. Secrets file: optional .env loaded into the process environment
//  1. Defaults: built-in values for every optional setting
//  2. Config File: optional config.yaml
//  3. Environment Variables: override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	srv := &http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Logging       LoggingConfig       `koanf:"logging"`
	Catalog       CatalogConfig       `koanf:"catalog"`
	OMDb          OMDbConfig          `koanf:"omdb"`
	MetadataCache MetadataCacheConfig `koanf:"metadata_cache"`
	Security      SecurityConfig      `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// CatalogConfig locates the precomputed artifact.
type CatalogConfig struct {
	Path           string `koanf:"path"`
	SimilarityPath string `koanf:"similarity_path"` // parquet and csv only
}

// OMDbConfig holds lookup service settings. APIKey is secret.
type OMDbConfig struct {
	APIKey         string        `koanf:"api_key"`
	BaseURL        string        `koanf:"base_url"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimit      float64       `koanf:"rate_limit"`
	RateBurst      int           `koanf:"rate_burst"`
	MaxConcurrency int           `koanf:"max_concurrency"`
}

// String omits the API key so the struct is safe to log.
func (o OMDbConfig) String() string {
	key := "unset"
	if o.APIKey != "" {
		key = "set"
	}
	return fmt.Sprintf("OMDbConfig{BaseURL:%s Timeout:%s RateLimit:%g RateBurst:%d MaxConcurrency:%d APIKey:%s}",
		o.BaseURL, o.Timeout, o.RateLimit, o.RateBurst, o.MaxConcurrency, key)
}

// MetadataCacheConfig holds enrichment cache settings.
type MetadataCacheConfig struct {
	MaxEntries      int           `koanf:"max_entries"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	StorePath       string        `koanf:"store_path"` // empty disables the persistent tier
}

// SecurityConfig holds HTTP hardening and admin access settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	AdminJWTSecret    string        `koanf:"admin_jwt_secret"`
}

// AdminEnabled reports whether the admin endpoints are mounted.
func (s SecurityConfig) AdminEnabled() bool {
	return s.AdminJWTSecret != ""
}
