// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/poster"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// posterStore is the optional persistent poster tier. gc is set only for
// the Badger backend, which needs periodic value log GC.
type posterStore struct {
	store cache.Store
	gc    *cache.BadgerStore
}

// Close releases the backend if one was opened.
func (p posterStore) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

func buildLoggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Caller = cfg.Logging.Caller
	lc.File = cfg.Logging.File
	if cfg.Logging.MaxSizeMB > 0 {
		lc.MaxSizeMB = cfg.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxBackups > 0 {
		lc.MaxBackups = cfg.Logging.MaxBackups
	}
	if cfg.Logging.MaxAgeDays > 0 {
		lc.MaxAgeDays = cfg.Logging.MaxAgeDays
	}
	return lc
}

func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.DefaultK = cfg.Recommend.DefaultK
	rc.MaxK = cfg.Recommend.MaxK
	rc.Cache.Enabled = cfg.Recommend.CacheSize > 0
	rc.Cache.MaxEntries = cfg.Recommend.CacheSize
	if cfg.Recommend.CacheTTL > 0 {
		rc.Cache.TTL = cfg.Recommend.CacheTTL
	}
	return rc
}

func buildTMDBConfig(cfg *config.Config) tmdb.Config {
	return tmdb.Config{
		APIKey:        cfg.TMDB.APIKey,
		BaseURL:       cfg.TMDB.BaseURL,
		ImageBaseURL:  cfg.TMDB.ImageBaseURL,
		Language:      cfg.TMDB.Language,
		Timeout:       cfg.TMDB.Timeout,
		RateLimit:     cfg.TMDB.RateLimit,
		RateBurst:     cfg.TMDB.RateBurst,
		RetryAttempts: cfg.TMDB.RetryAttempts,
		RetryDelay:    cfg.TMDB.RetryDelay,
	}
}

func buildPosterConfig(cfg *config.Config) poster.Config {
	return poster.Config{
		CacheSize:      cfg.Poster.CacheSize,
		CacheTTL:       cfg.Poster.CacheTTL,
		PlaceholderURL: cfg.Poster.PlaceholderURL,
	}
}

// openPosterStore opens the backend named by cache.backend. "none" returns
// an empty posterStore and the resolver runs memory-only.
func openPosterStore(ctx context.Context, cfg *config.Config) (posterStore, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendBadger:
		bs, err := cache.OpenBadger(cfg.Cache.Path)
		if err != nil {
			return posterStore{}, fmt.Errorf("open badger poster cache: %w", err)
		}
		return posterStore{store: bs, gc: bs}, nil

	case config.CacheBackendRedis:
		rs, err := cache.OpenRedis(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return posterStore{}, fmt.Errorf("open redis poster cache: %w", err)
		}
		return posterStore{store: rs}, nil

	case config.CacheBackendNone, "":
		return posterStore{}, nil

	default:
		return posterStore{}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
