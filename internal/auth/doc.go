// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package auth protects the admin endpoints with HS256 JWT bearer tokens.
//
// Tokens are minted offline with "reelctl admin-token" using the same
// ADMIN_JWT_SECRET the server is configured with.
package auth
