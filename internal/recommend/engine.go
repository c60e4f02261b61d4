// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Catalog is the read-only view of the movie catalog the engine ranks over.
// *catalog.Store implements it.
type Catalog interface {
	Len() int
	Index(title string) (int, bool)
	Movie(i int) catalog.Movie
	Row(i int) []float64
}

// Engine ranks catalog movies by precomputed similarity.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog Catalog

	// Ranked results keyed by "title|k". Ranking is deterministic, so a
	// cached result is always identical to a recomputed one.
	cache *cache.LRU[string, cachedResult]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	notFound     atomic.Int64
}

// cachedResult holds a ranked result without per-request metadata.
type cachedResult struct {
	query      catalog.Movie
	items      []ScoredMovie
	candidates int
}

// NewEngine creates a new recommendation engine over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[string, cachedResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Recommend returns the K movies most similar to req.Title, best first.
//
// Ties in score are broken by ascending catalog index. The queried movie is
// never part of the result, even when its self-similarity is not the row
// maximum. Catalogs with K or fewer other movies return all of them.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(req)
	if err != nil {
		metrics.RecordRecommendation("invalid_limit", time.Since(start))
		return nil, err
	}
	logger := e.createRequestLogger(req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if resp := e.tryGetCachedResponse(req, start, logger); resp != nil {
		metrics.RecordRecommendation("cache_hit", time.Since(start))
		return resp, nil
	}

	idx, ok := e.catalog.Index(req.Title)
	if !ok {
		e.notFound.Add(1)
		metrics.RecordRecommendation("not_found", time.Since(start))
		logger.Debug().Msg("title not in catalog")
		return nil, fmt.Errorf("%w: %q", ErrNotFound, req.Title)
	}

	result := e.rank(idx, req.K)
	e.cacheResult(req, result)

	resp := e.buildResponse(req, result, start, false)
	metrics.RecordRecommendation("ok", time.Since(start))

	logger.Debug().
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults, validates K and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.K <= 0 {
		req.K = e.config.DefaultK
	}
	if req.K > e.config.MaxK {
		return req, fmt.Errorf("%w: %d exceeds maximum %d", ErrInvalidLimit, req.K, e.config.MaxK)
	}
	return req, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("title", req.Title).
		Int("k", req.K).
		Logger()
}

// rank orders every other movie by score descending, index ascending,
// and keeps the first k.
func (e *Engine) rank(idx, k int) cachedResult {
	row := e.catalog.Row(idx)

	candidates := make([]int, 0, len(row))
	for j := range row {
		if j != idx {
			candidates = append(candidates, j)
		}
	}

	slices.SortFunc(candidates, func(a, b int) int {
		if c := cmp.Compare(row[b], row[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	n := min(k, len(candidates))
	items := make([]ScoredMovie, n)
	for i := 0; i < n; i++ {
		j := candidates[i]
		items[i] = ScoredMovie{
			Rank:  i + 1,
			Index: j,
			Movie: e.catalog.Movie(j),
			Score: row[j],
		}
	}

	return cachedResult{
		query:      e.catalog.Movie(idx),
		items:      items,
		candidates: len(candidates),
	}
}

// tryGetCachedResponse attempts to retrieve a cached response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(req Request, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}

	result, ok := e.cache.Get(e.cacheKey(req))
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	logger.Debug().Msg("cache hit")
	return e.buildResponse(req, result, start, true)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheResult(req Request, result cachedResult) {
	if e.cache != nil {
		e.cache.Add(e.cacheKey(req), result)
	}
}

// buildResponse constructs the final response. Items are copied so callers
// may modify them without corrupting the cache.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, result cachedResult, start time.Time, cacheHit bool) *Response {
	return &Response{
		Query:           result.query,
		Items:           slices.Clone(result.items),
		TotalCandidates: result.candidates,
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			K:         req.K,
			LatencyMS: time.Since(start).Milliseconds(),
			CacheHit:  cacheHit,
			Timestamp: time.Now(),
		},
	}
}

// cacheKey generates a cache key for a request.
//
//nolint:gocritic // hugeParam: req passed by value for simplicity
func (e *Engine) cacheKey(req Request) string {
	return req.Title + "|" + strconv.Itoa(req.K)
}

// CleanupExpired sweeps expired cached results. It is driven by the
// supervisor's cache janitor.
func (e *Engine) CleanupExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// Stats returns the current engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		NotFound:     e.notFound.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}
