// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with Koanf v2. Later sources override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/marquee/config.yaml)
 3. Environment variables mapped through an explicit table

Only mapped environment variables are read, so unrelated variables in the
process environment never leak into configuration.

# Configuration Structure

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - CatalogConfig: paths to the movie catalog and similarity matrix
  - RecommendConfig: default and maximum recommendation counts, result cache
  - TMDBConfig: TMDB API key, endpoints, timeouts, rate limit and retries
  - PosterConfig: poster cache and placeholder image
  - CacheConfig: optional persistent poster tier (badger or redis)
  - GalleryConfig: poster fan-out concurrency
  - UIConfig: page title, subtitle and default theme
  - SecurityConfig: CORS origins and inbound rate limiting
  - LoggingConfig: level, format and optional file rotation

# Environment Variables

Commonly set:
  - HTTP_PORT: Listen port (default: 8501)
  - CATALOG_PATH, SIMILARITY_PATH: artifact locations
  - TMDB_API_KEY: TMDB key (posters use the placeholder when unset)
  - CACHE_BACKEND: none, badger or redis
  - UI_DARK_MODE: default to the dark palette
  - LOG_LEVEL, LOG_FORMAT: logging

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Addr())

# Validation

Validate is called by Load and rejects out-of-range ports, unknown cache
backends, malformed URLs, wildcard CORS in production and unknown log levels.
*/
package config
