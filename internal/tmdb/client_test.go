// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const testAPIKey = "test-secret-key"

// newTestClient points a client at srv with fast retries and no throttling.
func newTestClient(t *testing.T, srv *httptest.Server, mutate ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		APIKey:        testAPIKey,
		BaseURL:       srv.URL,
		ImageBaseURL:  "https://image.tmdb.org/t/p/w500",
		Timeout:       2 * time.Second,
		RateLimit:     1000,
		RateBurst:     100,
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewClient(cfg)
}

func TestPosterPath_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotLang = r.URL.Query().Get("language")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":19995,"title":"Avatar","poster_path":"/kyeqWdyUXW608qlYkRqosgbbJyK.jpg"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	path, err := c.PosterPath(context.Background(), 19995)
	if err != nil {
		t.Fatalf("PosterPath() error = %v", err)
	}
	if path != "/kyeqWdyUXW608qlYkRqosgbbJyK.jpg" {
		t.Errorf("PosterPath() = %q", path)
	}
	if gotPath != "/movie/19995" {
		t.Errorf("request path = %q, want /movie/19995", gotPath)
	}
	if gotKey != testAPIKey {
		t.Errorf("api_key = %q, want %q", gotKey, testAPIKey)
	}
	if gotLang != "en-US" {
		t.Errorf("language = %q, want en-US", gotLang)
	}
}

func TestPosterURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"poster_path":"/abc.jpg"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.PosterURL(context.Background(), 1)
	if err != nil {
		t.Fatalf("PosterURL() error = %v", err)
	}
	if want := "https://image.tmdb.org/t/p/w500/abc.jpg"; got != want {
		t.Errorf("PosterURL() = %q, want %q", got, want)
	}
}

func TestPosterPath_NotConfigured(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *Config) { cfg.APIKey = "" })
	if c.Configured() {
		t.Error("Configured() = true, want false")
	}
	_, err := c.PosterPath(context.Background(), 1)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server received %d requests, want 0", hits.Load())
	}
}

func TestPosterPath_MalformedResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"poster_path":`},
		{"null poster", `{"id":1,"poster_path":null}`},
		{"empty poster", `{"id":1,"poster_path":""}`},
		{"missing poster", `{"id":1,"title":"Untitled"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv)
			_, err := c.PosterPath(context.Background(), 1)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("error = %v, want ErrMalformedResponse", err)
			}
			if hits.Load() != 1 {
				t.Errorf("malformed response retried: %d requests", hits.Load())
			}
		})
	}
}

func TestPosterPath_NotFoundIsUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.PosterPath(context.Background(), 999999)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected StatusError 404, got %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("404 retried: %d requests", hits.Load())
	}
}

func TestPosterPath_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"poster_path":"/third.jpg"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	path, err := c.PosterPath(context.Background(), 7)
	if err != nil {
		t.Fatalf("PosterPath() error = %v", err)
	}
	if path != "/third.jpg" {
		t.Errorf("PosterPath() = %q", path)
	}
	if hits.Load() != 3 {
		t.Errorf("requests = %d, want 3", hits.Load())
	}
}

func TestPosterPath_RetriesExhausted(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *Config) { cfg.RetryAttempts = 1 })
	_, err := c.PosterPath(context.Background(), 7)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
	if hits.Load() != 2 {
		t.Errorf("requests = %d, want 2", hits.Load())
	}
}

func TestPosterPath_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
		cfg.RetryAttempts = 0
	})

	start := time.Now()
	_, err := c.PosterPath(context.Background(), 1)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}

func TestPosterPath_ErrorsDoNotLeakAPIKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, srv, func(cfg *Config) { cfg.RetryAttempts = 0 })
	srv.Close()

	_, err := c.PosterPath(context.Background(), 1)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
	if strings.Contains(err.Error(), testAPIKey) {
		t.Errorf("error leaks API key: %v", err)
	}
}

func TestPosterPath_CircuitOpens(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *Config) { cfg.RetryAttempts = 0 })

	for i := 0; i < 10; i++ {
		if _, err := c.PosterPath(context.Background(), int64(i)); !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("call %d: error = %v, want ErrUpstreamUnavailable", i, err)
		}
	}
	if got := c.BreakerState(); got != "open" {
		t.Fatalf("BreakerState() = %q, want open", got)
	}

	before := hits.Load()
	_, err := c.PosterPath(context.Background(), 42)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
	if hits.Load() != before {
		t.Error("open circuit still reached the server")
	}
}

func TestPosterPath_MalformedDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"poster_path":null}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	for i := 0; i < 15; i++ {
		_, _ = c.PosterPath(context.Background(), int64(i))
	}
	if got := c.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed", got)
	}
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNotConfigured, CodeNotConfigured},
		{ErrMalformedResponse, CodeMalformedResponse},
		{&StatusError{StatusCode: 500}, CodeUpstreamUnavailable},
		{errors.New("other"), ""},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", maxErrorBodySize+10)
	got := readBodyForError(strings.NewReader(big))
	if !strings.HasSuffix(got, "... (truncated)") {
		t.Error("expected truncation suffix")
	}
	if got := readBodyForError(strings.NewReader("short")); got != "short" {
		t.Errorf("readBodyForError() = %q", got)
	}
}
