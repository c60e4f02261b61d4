// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Avatar", "Avatar"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Amélie", "Amélie"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 100, false},
		{"limit=5", 5, false},
		{"limit=%205%20", 5, false},
		{"limit=-3", -3, false},
		{"limit=abc", 0, true},
		{"limit=3.5", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		got, err := queryInt(r, "limit", 100)
		if (err != nil) != tt.wantErr {
			t.Errorf("queryInt(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("queryInt(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestQueryBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    bool
		wantErr bool
	}{
		{"", true, false},
		{"posters=false", false, false},
		{"posters=0", false, false},
		{"posters=TRUE", true, false},
		{"posters=nope", false, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		got, err := queryBool(r, "posters", true)
		if (err != nil) != tt.wantErr {
			t.Errorf("queryBool(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("queryBool(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestPathInt64(t *testing.T) {
	t.Parallel()

	if got, err := pathInt64("id", "19995"); err != nil || got != 19995 {
		t.Errorf("pathInt64(19995) = %d, %v", got, err)
	}

	_, err := pathInt64("id", "x1")
	var pe *paramError
	if !errors.As(err, &pe) {
		t.Fatalf("pathInt64(x1) error = %v, want *paramError", err)
	}
	if pe.details()["field"] != "id" {
		t.Errorf("details = %v", pe.details())
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	if apiErr := validateRequest(&MoviesRequest{Limit: 10}); apiErr != nil {
		t.Errorf("valid request rejected: %+v", apiErr)
	}

	apiErr := validateRequest(&MoviesRequest{Limit: 0})
	if apiErr == nil {
		t.Fatal("limit 0 accepted")
	}
	if apiErr.Code != ErrCodeValidationFailed {
		t.Errorf("code = %q, want %q", apiErr.Code, ErrCodeValidationFailed)
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("field = %v, want limit", apiErr.Details["field"])
	}
}

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("build gallery: %w", recommend.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"invalid limit", recommend.ErrInvalidLimit, http.StatusBadRequest, ErrCodeValidationFailed},
		{"not configured", tmdb.ErrNotConfigured, http.StatusServiceUnavailable, ErrCodeNotConfigured},
		{"malformed", tmdb.ErrMalformedResponse, http.StatusBadGateway, ErrCodeMalformedResponse},
		{"upstream status", &tmdb.StatusError{StatusCode: 503}, http.StatusBadGateway, ErrCodeUpstreamUnavailable},
		{"catalog not ready", ErrCatalogNotReady, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		status, code := errorStatus(tt.err)
		if status != tt.wantStatus || code != tt.wantCode {
			t.Errorf("%s: errorStatus() = %d %s, want %d %s", tt.name, status, code, tt.wantStatus, tt.wantCode)
		}
	}
}
