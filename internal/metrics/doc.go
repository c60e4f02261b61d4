// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

API Metrics:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Similarity Lookup:
  - recommendation_requests_total{outcome}
  - recommendation_duration_seconds
  - catalog_movies

TMDB:
  - tmdb_requests_total{outcome}
  - tmdb_request_duration_seconds
  - tmdb_retries_total

Poster Cache:
  - poster_cache_hits_total{tier}, poster_cache_misses_total{tier}
  - poster_cache_errors_total{tier, operation}
  - cache_entries_expired_total{cache}
  - gallery_poster_failures_total{reason}

Circuit Breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

BadgerDB:
  - badger_gc_runs_total{result}

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest("GET", "/api/v1/recommendations", "200", time.Since(start))
*/
package metrics
