// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
)

type contextKey string

// ClaimsContextKey stores validated claims in the request context.
const ClaimsContextKey contextKey = "claims"

// ErrorWriter renders an authentication failure in the caller's envelope.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, status int, code, message string)

// RequireRole returns middleware that accepts only requests carrying a valid
// "Authorization: Bearer <token>" whose role equals role.
func RequireRole(m *JWTManager, role string, writeError ErrorWriter) func(http.Handler) http.Handler {
	if writeError == nil {
		writeError = plainError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="reelmatch"`)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "bearer token required")
				return
			}

			claims, err := m.ValidateToken(token)
			if err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("admin token validation failed")
				w.Header().Set("WWW-Authenticate", `Bearer realm="reelmatch", error="invalid_token"`)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			if claims.Role != role {
				writeError(w, r, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by RequireRole.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func plainError(w http.ResponseWriter, _ *http.Request, status int, _, message string) {
	http.Error(w, message, status)
}
