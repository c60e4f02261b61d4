// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package poster

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Cache tier labels used in metrics and logs.
const (
	TierMemory     = "memory"
	TierPersistent = "persistent"
)

// DefaultPlaceholderURL is shown when a poster cannot be resolved.
const DefaultPlaceholderURL = "https://placehold.co/500x750/png"

// Source resolves a movie id to a full poster URL. *tmdb.Client satisfies it.
type Source interface {
	PosterURL(ctx context.Context, movieID int64) (string, error)
}

// Config holds resolver settings.
type Config struct {
	CacheSize      int
	CacheTTL       time.Duration
	PlaceholderURL string
}

// storedPoster is the JSON document written to the persistent tier.
type storedPoster struct {
	URL        string    `json:"url"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Resolver maps movie ids to poster URLs through an in-memory LRU, an
// optional persistent store and finally the Source.
//
// Only successful resolutions are cached. Persistent tier failures are logged
// and treated as misses. Concurrent lookups for the same id share one
// upstream call.
type Resolver struct {
	source      Source
	memory      *cache.LRU[int64, string]
	store       cache.Store
	ttl         time.Duration
	placeholder string
	group       singleflight.Group
}

// NewResolver creates a resolver. store may be nil to disable the
// persistent tier.
func NewResolver(source Source, store cache.Store, cfg Config) *Resolver {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.PlaceholderURL == "" {
		cfg.PlaceholderURL = DefaultPlaceholderURL
	}
	return &Resolver{
		source:      source,
		memory:      cache.NewLRU[int64, string](cfg.CacheSize, cfg.CacheTTL),
		store:       store,
		ttl:         cfg.CacheTTL,
		placeholder: cfg.PlaceholderURL,
	}
}

// Resolve returns the poster URL for movieID.
func (r *Resolver) Resolve(ctx context.Context, movieID int64) (string, error) {
	if url, ok := r.memory.Get(movieID); ok {
		metrics.RecordPosterCache(TierMemory, true)
		return url, nil
	}
	metrics.RecordPosterCache(TierMemory, false)

	key := strconv.FormatInt(movieID, 10)

	// The shared call outlives any single caller; the source bounds it with
	// its own per-call timeout.
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (interface{}, error) {
		if url, ok := r.loadPersistent(shared, key); ok {
			r.memory.Add(movieID, url)
			return url, nil
		}

		url, err := r.source.PosterURL(shared, movieID)
		if err != nil {
			return "", err
		}

		r.memory.Add(movieID, url)
		r.storePersistent(shared, key, url)
		return url, nil
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("resolve poster for movie %d: %w", movieID, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", fmt.Errorf("resolve poster for movie %d: %w", movieID, res.Err)
		}
		return res.Val.(string), nil
	}
}

// ResolveOrPlaceholder always returns a displayable URL. On failure it
// returns the placeholder together with the error.
func (r *Resolver) ResolveOrPlaceholder(ctx context.Context, movieID int64) (string, error) {
	url, err := r.Resolve(ctx, movieID)
	if err != nil {
		return r.placeholder, err
	}
	return url, nil
}

// Placeholder returns the fallback poster URL.
func (r *Resolver) Placeholder() string {
	return r.placeholder
}

// Backend names the persistent tier, or "none".
func (r *Resolver) Backend() string {
	if r.store == nil {
		return "none"
	}
	return r.store.Name()
}

// pinger is implemented by stores with a remote connection to check.
type pinger interface {
	Ping(ctx context.Context) error
}

// CheckBackend reports whether the persistent tier is reachable. It returns
// nil when there is no store or the store has nothing remote to check.
func (r *Resolver) CheckBackend(ctx context.Context) error {
	p, ok := r.store.(pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s poster cache unreachable: %w", r.store.Name(), err)
	}
	return nil
}

// CleanupExpired drops expired entries from the memory tier.
func (r *Resolver) CleanupExpired() int {
	return r.memory.CleanupExpired()
}

// Stats returns memory tier statistics.
func (r *Resolver) Stats() cache.Stats {
	return r.memory.Stats()
}

func storeKey(key string) string {
	return "poster:" + key
}

func (r *Resolver) loadPersistent(ctx context.Context, key string) (string, bool) {
	if r.store == nil {
		return "", false
	}

	data, err := r.store.Get(ctx, storeKey(key))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			metrics.RecordPosterCacheError(TierPersistent, "get")
			logging.Ctx(ctx).Warn().Err(err).Str("backend", r.store.Name()).Str("movie_id", key).Msg("Poster cache read failed, treating as miss")
		}
		metrics.RecordPosterCache(TierPersistent, false)
		return "", false
	}

	var entry storedPoster
	if err := json.Unmarshal(data, &entry); err != nil || entry.URL == "" {
		metrics.RecordPosterCacheError(TierPersistent, "decode")
		logging.Ctx(ctx).Warn().Err(err).Str("movie_id", key).Msg("Discarding undecodable poster cache entry")
		metrics.RecordPosterCache(TierPersistent, false)
		return "", false
	}

	metrics.RecordPosterCache(TierPersistent, true)
	return entry.URL, true
}

func (r *Resolver) storePersistent(ctx context.Context, key, url string) {
	if r.store == nil {
		return
	}

	data, err := json.Marshal(storedPoster{URL: url, ResolvedAt: time.Now().UTC()})
	if err != nil {
		metrics.RecordPosterCacheError(TierPersistent, "encode")
		return
	}
	if err := r.store.Set(ctx, storeKey(key), data, r.ttl); err != nil {
		metrics.RecordPosterCacheError(TierPersistent, "set")
		logging.Ctx(ctx).Warn().Err(err).Str("backend", r.store.Name()).Str("movie_id", key).Msg("Poster cache write failed")
	}
}
