// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers by Load(): built-in defaults, then an
// optional YAML file, then environment variables.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Poster    PosterConfig    `koanf:"poster"`
	Cache     CacheConfig     `koanf:"cache"`
	Gallery   GalleryConfig   `koanf:"gallery"`
	UI        UIConfig        `koanf:"ui"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig points at the pre-built artifacts loaded at startup.
//
// Environment Variables:
//   - CATALOG_PATH: movie catalog, .csv or .json (default: data/movies.csv)
//   - SIMILARITY_PATH: similarity matrix, .json or .csv (default: data/similarity.json)
type CatalogConfig struct {
	CatalogPath    string `koanf:"catalog_path"`
	SimilarityPath string `koanf:"similarity_path"`
}

// RecommendConfig holds similarity lookup settings.
type RecommendConfig struct {
	// DefaultK is the number of recommendations returned when none is requested.
	DefaultK int `koanf:"default_k"`

	// MaxK is the largest number of recommendations a caller may request.
	MaxK int `koanf:"max_k"`

	// CacheSize is the number of ranked results kept in memory.
	CacheSize int `koanf:"cache_size"`

	// CacheTTL is how long a ranked result stays cached.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// TMDBConfig holds The Movie Database API client settings.
//
// Environment Variables:
//   - TMDB_API_KEY: API key (posters fall back to the placeholder when empty)
//   - TMDB_BASE_URL: API base (default: https://api.themoviedb.org/3)
//   - TMDB_IMAGE_BASE_URL: image base (default: https://image.tmdb.org/t/p/w500)
//   - TMDB_LANGUAGE: response language (default: en-US)
//   - TMDB_TIMEOUT: per-call timeout (default: 5s)
//   - TMDB_RATE_LIMIT / TMDB_RATE_BURST: outbound requests per second and burst
//   - TMDB_RETRY_ATTEMPTS / TMDB_RETRY_DELAY: transient failure retries
type TMDBConfig struct {
	APIKey        string        `koanf:"api_key"`
	BaseURL       string        `koanf:"base_url"`
	ImageBaseURL  string        `koanf:"image_base_url"`
	Language      string        `koanf:"language"`
	Timeout       time.Duration `koanf:"timeout"`
	RateLimit     float64       `koanf:"rate_limit"`
	RateBurst     int           `koanf:"rate_burst"`
	RetryAttempts uint          `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"`
}

// PosterConfig holds poster resolution settings.
type PosterConfig struct {
	CacheSize      int           `koanf:"cache_size"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
	PlaceholderURL string        `koanf:"placeholder_url"`
}

// Cache backends for the persistent poster tier.
const (
	CacheBackendNone   = "none"
	CacheBackendBadger = "badger"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects the optional second-tier poster cache.
//
// Environment Variables:
//   - CACHE_BACKEND: none, badger or redis (default: none)
//   - CACHE_PATH: BadgerDB directory (required when CACHE_BACKEND=badger)
//   - REDIS_URL: redis connection URL (required when CACHE_BACKEND=redis)
//   - CACHE_GC_INTERVAL: BadgerDB value log GC interval (default: 10m)
type CacheConfig struct {
	Backend    string        `koanf:"backend"`
	Path       string        `koanf:"path"`
	RedisURL   string        `koanf:"redis_url"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// GalleryConfig controls poster fan-out when building a gallery.
type GalleryConfig struct {
	MaxConcurrency int `koanf:"max_concurrency"`
}

// UIConfig holds presentation defaults for the HTML page.
type UIConfig struct {
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`
	DarkMode bool   `koanf:"dark_mode"`
}

// SecurityConfig holds inbound HTTP protection settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
//   - LOG_FILE: rotate logs into this file instead of stderr
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// File, when set, enables lumberjack rotation into this path.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// TMDBEnabled reports whether poster lookups can reach TMDB.
func (c *Config) TMDBEnabled() bool {
	return c.TMDB.APIKey != ""
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
