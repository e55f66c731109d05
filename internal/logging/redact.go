// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"net/url"
	"regexp"
	"strings"
)

// Redacted replaces secret values in log output.
const Redacted = "[REDACTED]"

// sensitiveParams are query parameter names whose values are never logged.
var sensitiveParams = []string{"apikey", "api_key", "key", "token", "access_token"}

// secretInText matches name=value pairs for sensitiveParams inside free text,
// such as a *url.Error message.
var secretInText = regexp.MustCompile(`(?i)\b(apikey|api_key|key|token|access_token)=([^&\s"']+)`)

// RedactURL returns raw with the values of credential-like query parameters
// replaced by Redacted. Unparseable input is redacted as free text.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redactText(raw)
	}

	q := u.Query()
	changed := false
	for name := range q {
		if isSensitiveParam(name) {
			q.Set(name, Redacted)
			changed = true
		}
	}
	if !changed {
		return raw
	}

	u.RawQuery = q.Encode()
	// Encode escapes the brackets; keep the marker readable.
	return strings.ReplaceAll(u.String(), url.QueryEscape(Redacted), Redacted)
}

// SanitizeError returns err's message with embedded secrets masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return redactText(err.Error())
}

func redactText(s string) string {
	return secretInText.ReplaceAllString(s, "${1}="+Redacted)
}

func isSensitiveParam(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range sensitiveParams {
		if lower == p {
			return true
		}
	}
	return false
}
