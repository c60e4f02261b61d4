// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable covers transport failures, timeouts, an open
	// circuit and any non-200 response (404 included).
	ErrUpstreamUnavailable = errors.New("tmdb upstream unavailable")

	// ErrMalformedResponse is returned when the body is not valid JSON or
	// poster_path is missing, null or empty.
	ErrMalformedResponse = errors.New("tmdb response malformed")

	// ErrNotConfigured is returned when no API key is set. No request is made.
	ErrNotConfigured = errors.New("tmdb api key not configured")
)

// Stable error codes shared by logs, metrics and the HTTP API.
const (
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeMalformedResponse   = "malformed_response"
	CodeNotConfigured       = "not_configured"
)

// StatusError reports a non-200 TMDB response. It unwraps to
// ErrUpstreamUnavailable.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tmdb returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// retryable reports whether the status is worth another attempt.
func (e *StatusError) retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ErrorCode maps an error to its stable code, or "" for nil and unknown errors.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return CodeNotConfigured
	case errors.Is(err, ErrMalformedResponse):
		return CodeMalformedResponse
	case errors.Is(err, ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	default:
		return ""
	}
}
