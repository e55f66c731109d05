// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// minJWTSecretLength is the minimum admin secret length for HS256.
const minJWTSecretLength = 32

// Validate checks that required configuration is present and valid.
// Every failure is a *ConfigurationError.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateCatalog,
		c.validateOMDb,
		c.validateMetadataCache,
		c.validateSecurity,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, format string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port", "HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return invalid("server.timeout", "HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return invalid("server.shutdown_timeout", "SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return invalid("logging.level", "LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return invalid("logging.format", "LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return invalid("catalog.path", "CATALOG_PATH is required")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if strings.TrimSpace(c.OMDb.APIKey) == "" {
		return &ConfigurationError{
			Field:  "omdb.api_key",
			Reason: "set OMDB_API_KEY in the environment, the secrets file or config.yaml",
			Err:    ErrMissingAPIKey,
		}
	}
	if err := validateHTTPURL(c.OMDb.BaseURL, "OMDB_BASE_URL"); err != nil {
		return &ConfigurationError{Field: "omdb.base_url", Reason: "invalid url", Err: err}
	}
	if c.OMDb.Timeout <= 0 {
		return invalid("omdb.timeout", "OMDB_TIMEOUT must be positive")
	}
	if c.OMDb.RateLimit < 0 {
		return invalid("omdb.rate_limit", "OMDB_RATE_LIMIT cannot be negative")
	}
	if c.OMDb.RateLimit > 0 && c.OMDb.RateBurst < 1 {
		return invalid("omdb.rate_burst", "OMDB_RATE_BURST must be at least 1 when rate limiting")
	}
	if c.OMDb.MaxConcurrency < 1 {
		return invalid("omdb.max_concurrency", "OMDB_MAX_CONCURRENCY must be at least 1")
	}
	return nil
}

func (c *Config) validateMetadataCache() error {
	if c.MetadataCache.MaxEntries < 1 {
		return invalid("metadata_cache.max_entries", "METADATA_CACHE_SIZE must be at least 1")
	}
	if c.MetadataCache.TTL <= 0 {
		return invalid("metadata_cache.ttl", "METADATA_CACHE_TTL must be positive")
	}
	if c.MetadataCache.CleanupInterval <= 0 {
		return invalid("metadata_cache.cleanup_interval", "METADATA_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return invalid("security.rate_limit_reqs", "RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return invalid("security.rate_limit_window", "RATE_LIMIT_WINDOW must be positive")
		}
	}
	if s := c.Security.AdminJWTSecret; s != "" && len(s) < minJWTSecretLength {
		return invalid("security.admin_jwt_secret", "ADMIN_JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	return nil
}
