// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// maxErrorBodySize caps how much of an error response is read (64KB).
	maxErrorBodySize = 64 * 1024
)

// errRateLimited marks a limiter wait that could not finish before the deadline.
var errRateLimited = errors.New("rate limiter wait aborted")

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	APIKey        string
	BaseURL       string
	ImageBaseURL  string
	Language      string
	Timeout       time.Duration
	RateLimit     float64
	RateBurst     int
	RetryAttempts uint
	RetryDelay    time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ImageBaseURL == "" {
		c.ImageBaseURL = DefaultImageBaseURL
	}
	if c.Language == "" {
		c.Language = "en-US"
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 40
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 10
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 200 * time.Millisecond
	}
}

// Client resolves poster paths from The Movie Database.
//
// Every call goes through a token bucket limiter, bounded retries for
// transient failures and a circuit breaker. Client is safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	imageBaseURL  string
	apiKey        string
	language      string
	timeout       time.Duration
	limiter       *rate.Limiter
	retryAttempts uint
	retryDelay    time.Duration
	cb            *gobreaker.CircuitBreaker[string]
}

// NewClient creates a TMDB client. An empty API key is allowed; calls then
// fail fast with ErrNotConfigured.
func NewClient(cfg Config) *Client {
	cfg.applyDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient:    httpClient,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL:  cfg.ImageBaseURL,
		apiKey:        cfg.APIKey,
		language:      cfg.Language,
		timeout:       cfg.Timeout,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		cb:            newBreaker(),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ImageBaseURL returns the base used to build full poster URLs.
func (c *Client) ImageBaseURL() string {
	return c.imageBaseURL
}

// movieDetails is the subset of /movie/{id} the client reads.
type movieDetails struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// PosterPath returns the poster_path TMDB holds for movieID, for example
// "/abc.jpg".
func (c *Client) PosterPath(ctx context.Context, movieID int64) (string, error) {
	if !c.Configured() {
		metrics.RecordTMDBRequest(CodeNotConfigured, 0)
		return "", ErrNotConfigured
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	path, err := c.execute(func() (string, error) {
		return c.fetchWithRetry(ctx, movieID)
	})
	if err != nil {
		err = classify(err)
	}

	outcome := "success"
	if err != nil {
		outcome = ErrorCode(err)
	}
	metrics.RecordTMDBRequest(outcome, time.Since(start))

	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Int64("movie_id", movieID).Str("outcome", outcome).Msg("TMDB poster lookup failed")
		return "", err
	}
	return path, nil
}

// PosterURL resolves movieID to a full image URL.
func (c *Client) PosterURL(ctx context.Context, movieID int64) (string, error) {
	path, err := c.PosterPath(ctx, movieID)
	if err != nil {
		return "", err
	}
	return BuildImageURL(c.imageBaseURL, path), nil
}

// fetchWithRetry retries transport errors, 429 and 5xx responses.
func (c *Client) fetchWithRetry(ctx context.Context, movieID int64) (string, error) {
	var path string
	err := retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("%w: %w: %w", ErrUpstreamUnavailable, errRateLimited, err)
			}
			p, err := c.fetch(ctx, movieID)
			if err != nil {
				return err
			}
			path = p
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordTMDBRetry()
			logging.Ctx(ctx).Debug().Uint("attempt", n+1).Err(err).Int64("movie_id", movieID).Msg("Retrying TMDB request")
		}),
	)
	return path, err
}

// fetch performs a single GET /movie/{id}.
func (c *Client) fetch(ctx context.Context, movieID int64) (string, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	reqURL := c.baseURL + "/movie/" + strconv.FormatInt(movieID, 10) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}

	var details movieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if details.PosterPath == nil || *details.PosterPath == "" {
		return "", fmt.Errorf("%w: no poster_path for movie %d", ErrMalformedResponse, movieID)
	}
	return *details.PosterPath, nil
}

// isTransient reports whether a failed attempt should be retried.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrMalformedResponse) || errors.Is(err, errRateLimited) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.retryable()
	}
	return errors.Is(err, ErrUpstreamUnavailable)
}

// classify folds context and unknown errors into ErrUpstreamUnavailable so
// callers only see the three sentinels.
func classify(err error) error {
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}

// redact drops the request URL from transport errors; it carries the API key.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// readBodyForError reads the response body for error messages with size limit
// to prevent memory exhaustion from malicious or buggy servers.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return fmt.Sprintf("(failed to read body: %v)", err)
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "... (truncated)"
	}
	return string(body)
}
