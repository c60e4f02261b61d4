// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee loads a movie catalog and a precomputed similarity matrix at startup,
then serves a themed HTML page and a JSON API that return the five movies most
similar to a chosen title, each with its TMDB poster.

# Application Architecture

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── Cache janitor (similarity and poster memory caches)
	│   └── Badger value log GC (CACHE_BACKEND=badger only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml, environment
 2. Logging: zerolog, optionally rotated to a file with lumberjack
 3. Catalog: movie list and similarity matrix (fatal on any mismatch)
 4. Recommendation engine: ranked rows with an LRU result cache
 5. TMDB client: rate limiter, retries and a circuit breaker
 6. Poster resolver: memory LRU plus optional Badger or Redis tier
 7. Gallery service, API handler and router
 8. Supervisor tree: Suture v4 process supervision

# Configuration

Priority: environment variables > config file > defaults.

	HTTP_PORT=8501                       # HTTP port
	CATALOG_PATH=data/movies.csv         # .csv or .json
	SIMILARITY_PATH=data/similarity.json # .json or .csv
	TMDB_API_KEY=<key>                   # posters use the placeholder without it
	CACHE_BACKEND=none                   # none, badger or redis
	CACHE_PATH=/data/poster-cache        # badger directory
	REDIS_URL=redis://localhost:6379/0   # redis backend
	UI_DARK_MODE=false                   # default page theme
	LOG_LEVEL=info                       # trace, debug, info, warn, error
	LOG_FORMAT=json                      # json or console

# Endpoints

	GET /                          HTML page (?title=...&theme=dark|light)
	GET /api/v1/recommendations    ranked gallery as JSON
	GET /api/v1/movies             catalog listing and search
	GET /api/v1/movies/{id}/poster single poster lookup
	GET /api/v1/health             status, liveness and readiness checks
	GET /metrics                   Prometheus metrics
	GET /swagger/                  API documentation

# Signal Handling

SIGINT and SIGTERM mark the service not ready, cancel the supervisor tree and
let the HTTP server drain within HTTP_SHUTDOWN_TIMEOUT.
*/
package main
