// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
)

// DefaultJanitorInterval is how often expired memory cache entries are swept.
const DefaultJanitorInterval = 5 * time.Minute

// Sweeper drops expired entries and reports how many it removed.
// *recommend.Engine and *poster.Resolver implement it.
type Sweeper interface {
	CleanupExpired() int
}

// CacheJanitorService periodically sweeps the in-memory LRU caches. Entries
// also expire lazily on read; the sweep reclaims memory held by entries that
// are never read again.
type CacheJanitorService struct {
	sweepers map[string]Sweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor over the named caches. The names
// label the cache_entries_expired_total metric.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(sweepers map[string]Sweeper, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &CacheJanitorService{
		sweepers: sweepers,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().
		Dur("interval", s.interval).
		Int("caches", len(s.sweepers)).
		Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one pass over every cache and returns the total removed.
func (s *CacheJanitorService) sweep() int {
	total := 0
	for name, sw := range s.sweepers {
		n := sw.CleanupExpired()
		metrics.RecordCacheExpired(name, n)
		total += n
	}
	if total > 0 {
		s.logger.Debug().Int("removed", total).Msg("expired cache entries swept")
	}
	return total
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
