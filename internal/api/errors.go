// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// ErrCatalogNotReady is returned by handlers when no catalog has been loaded.
var ErrCatalogNotReady = errors.New("catalog not loaded")

// errorStatus maps a domain error to its HTTP status and API error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, recommend.ErrInvalidLimit):
		return http.StatusBadRequest, ErrCodeValidationFailed
	case errors.Is(err, tmdb.ErrNotConfigured):
		return http.StatusServiceUnavailable, ErrCodeNotConfigured
	case errors.Is(err, tmdb.ErrMalformedResponse):
		return http.StatusBadGateway, ErrCodeMalformedResponse
	case errors.Is(err, tmdb.ErrUpstreamUnavailable):
		return http.StatusBadGateway, ErrCodeUpstreamUnavailable
	case errors.Is(err, ErrCatalogNotReady):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// errorMessages are the client-facing texts per code. Internal detail stays
// in the logs.
var errorMessages = map[string]string{
	ErrCodeNotFound:            "Movie not found",
	ErrCodeNotConfigured:       "Poster lookups are not configured",
	ErrCodeMalformedResponse:   "Poster service returned an unusable response",
	ErrCodeUpstreamUnavailable: "Poster service unavailable",
	ErrCodeServiceUnavailable:  "Service not ready",
	ErrCodeInternalError:       "An internal error occurred",
}

// respondDomainError writes the envelope for err and logs it at a level
// matching its status.
func respondDomainError(rw *ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)

	logger := logging.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Err(err).Int("status", status).Str("code", code).Msg("Request failed")

	message, ok := errorMessages[code]
	if !ok {
		message = sanitizeLogValue(err.Error())
	}
	rw.Error(status, code, message)
}
