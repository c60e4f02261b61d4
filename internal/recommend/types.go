// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

var (
	// ErrNotFound is returned when the requested title is not in the catalog.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidLimit is returned when K exceeds the configured maximum.
	ErrInvalidLimit = errors.New("invalid recommendation limit")
)

// Request represents a recommendation request.
type Request struct {
	// Title is the exact catalog title to find neighbours for.
	Title string `json:"title"`

	// K is the number of recommendations to return.
	// Defaults to Config.DefaultK if zero or negative.
	K int `json:"k,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredMovie is one ranked recommendation.
type ScoredMovie struct {
	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`

	// Index is the movie's row in the similarity matrix.
	Index int `json:"-"`

	// Movie is the recommended catalog entry.
	Movie catalog.Movie `json:"movie"`

	// Score is the similarity between the query and this movie.
	Score float64 `json:"score"`
}

// Response represents a recommendation response.
type Response struct {
	// Query is the resolved catalog entry for the requested title.
	Query catalog.Movie `json:"query"`

	// Items is the ordered list of recommended movies.
	Items []ScoredMovie `json:"items"`

	// TotalCandidates is the number of movies ranked (catalog size minus the query).
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	K         int       `json:"k"`
	LatencyMS int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats contains engine counters for observability.
type Stats struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	NotFound     int64 `json:"not_found"`
	CacheSize    int   `json:"cache_size"`
}
