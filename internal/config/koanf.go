// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

const (
	// ConfigPathEnvVar overrides the config file path.
	ConfigPathEnvVar = "CONFIG_PATH"

	// SecretsFileEnvVar overrides the secrets file path.
	SecretsFileEnvVar = "SECRETS_FILE"

	// DefaultSecretsFile is loaded when present.
	DefaultSecretsFile = ".env"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3900,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Path: "data/catalog.json",
		},
		OMDb: OMDbConfig{
			BaseURL:        "https://www.omdbapi.com/",
			Timeout:        5 * time.Second,
			RateLimit:      10,
			RateBurst:      5,
			MaxConcurrency: 5,
		},
		MetadataCache: MetadataCacheConfig{
			MaxEntries:      1000,
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
	}
}

// Load loads configuration using a layered approach:
//
//  0. Secrets: SECRETS_FILE (default .env) into the environment, if present
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML config file
//  3. Environment Variables: override any setting
//
// Variables already set in the environment win over the secrets file.
// The result is validated; see LoadUnvalidated for tools that only need
// part of the configuration.
func Load() (*Config, error) {
	cfg, err := LoadUnvalidated()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadUnvalidated runs the same layers as Load without calling Validate.
// Callers must validate what they use.
func LoadUnvalidated() (*Config, error) {
	if err := loadSecretsFile(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// loadSecretsFile loads KEY=VALUE pairs without overriding the environment.
// A missing default file is not an error; a missing explicit file is.
func loadSecretsFile() error {
	path := os.Getenv(SecretsFileEnvVar)
	explicit := path != ""
	if !explicit {
		path = DefaultSecretsFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load secrets file %s: %w", path, err)
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names to koanf config paths.
var envMappings = map[string]string{
	"http_port":                 "server.port",
	"http_host":                 "server.host",
	"http_timeout":              "server.timeout",
	"shutdown_timeout":          "server.shutdown_timeout",
	"log_level":                 "logging.level",
	"log_format":                "logging.format",
	"log_caller":                "logging.caller",
	"catalog_path":              "catalog.path",
	"similarity_path":           "catalog.similarity_path",
	"omdb_api_key":              "omdb.api_key",
	"omdb_base_url":             "omdb.base_url",
	"omdb_timeout":              "omdb.timeout",
	"omdb_rate_limit":           "omdb.rate_limit",
	"omdb_rate_burst":           "omdb.rate_burst",
	"omdb_max_concurrency":      "omdb.max_concurrency",
	"metadata_cache_size":       "metadata_cache.max_entries",
	"metadata_cache_ttl":        "metadata_cache.ttl",
	"metadata_cleanup_interval": "metadata_cache.cleanup_interval",
	"metadata_store_path":       "metadata_cache.store_path",
	"cors_origins":              "security.cors_origins",
	"rate_limit_requests":       "security.rate_limit_reqs",
	"rate_limit_window":         "security.rate_limit_window",
	"disable_rate_limit":        "security.rate_limit_disabled",
	"admin_jwt_secret":          "security.admin_jwt_secret",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - OMDB_API_KEY -> omdb.api_key
//   - HTTP_PORT -> server.port
//   - METADATA_CACHE_TTL -> metadata_cache.ttl
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
