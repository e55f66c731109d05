// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("items", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Warn().Str("url", logging.RedactURL(u)).Msg("lookup failed")
//
// # Secrets
//
// Never log a URL or error that may carry the metadata API key without passing
// it through RedactURL or SanitizeError first. Both mask the values of
// credential-like query parameters.
//
// # slog Interop
//
// NewSlogLogger returns a *slog.Logger backed by the same zerolog instance so
// libraries that require slog (the suture event hook) share one output.
package logging
