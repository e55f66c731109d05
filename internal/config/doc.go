// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config loads Reelmatch configuration with Koanf v2.

Sources, lowest to highest priority:

 1. built-in defaults (structs provider)
 2. an optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/reelmatch/config.yaml
 3. environment variables, through an explicit name mapping

Before the layers are read, an optional dotenv secrets file ($SECRETS_FILE,
default .env) is merged into the process environment with godotenv. Values
already in the environment are not overwritten.

# Environment Variables

	HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	CATALOG_PATH, SIMILARITY_PATH
	OMDB_API_KEY (required), OMDB_BASE_URL, OMDB_TIMEOUT,
	OMDB_RATE_LIMIT, OMDB_RATE_BURST, OMDB_MAX_CONCURRENCY
	METADATA_CACHE_SIZE, METADATA_CACHE_TTL, METADATA_CLEANUP_INTERVAL,
	METADATA_STORE_PATH
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
	DISABLE_RATE_LIMIT, ADMIN_JWT_SECRET

# Validation

Load fails fast. Every validation failure is a *ConfigurationError;
a missing API key also matches ErrMissingAPIKey through errors.Is.
*/
package config
