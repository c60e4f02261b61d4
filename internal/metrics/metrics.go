// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Similarity lookups
// - TMDB poster resolution
// - Poster cache efficiency per tier
// - Circuit breaker health

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Similarity Lookup Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of similarity lookups",
		},
		[]string{"outcome"}, // "ok", "cache_hit", "not_found", "invalid_limit"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of similarity lookups in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	// TMDB Metrics
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"outcome"}, // "ok", "upstream_unavailable", "malformed_response", "not_configured"
	)

	TMDBRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	TMDBRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_retries_total",
			Help: "Total number of retried TMDB requests",
		},
	)

	// Poster Cache Metrics
	PosterCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_hits_total",
			Help: "Total number of poster cache hits",
		},
		[]string{"tier"}, // "memory", "badger", "redis"
	)

	PosterCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_misses_total",
			Help: "Total number of poster cache misses",
		},
		[]string{"tier"},
	)

	PosterCacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_errors_total",
			Help: "Total number of second-tier poster cache errors",
		},
		[]string{"tier", "operation"},
	)

	CacheEntriesExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_entries_expired_total",
			Help: "Total number of expired cache entries removed by the janitor",
		},
		[]string{"cache"},
	)

	// Gallery Metrics
	GalleryPosterFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_poster_failures_total",
			Help: "Total number of gallery cards rendered with the placeholder poster",
		},
		[]string{"reason"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Badger Metrics
	BadgerGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badger_gc_runs_total",
			Help: "Total number of BadgerDB value log GC runs",
		},
		[]string{"result"}, // "success", "error"
	)
)

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a similarity lookup by outcome.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordTMDBRequest records one logical TMDB lookup, including retries.
func RecordTMDBRequest(outcome string, duration time.Duration) {
	TMDBRequestsTotal.WithLabelValues(outcome).Inc()
	TMDBRequestDuration.Observe(duration.Seconds())
}

// RecordTMDBRetry counts a retried TMDB attempt.
func RecordTMDBRetry() {
	TMDBRetries.Inc()
}

// RecordPosterCache records a hit or miss against one cache tier.
func RecordPosterCache(tier string, hit bool) {
	if hit {
		PosterCacheHits.WithLabelValues(tier).Inc()
	} else {
		PosterCacheMisses.WithLabelValues(tier).Inc()
	}
}

// RecordPosterCacheError records a second-tier failure that was treated as a miss.
func RecordPosterCacheError(tier, operation string) {
	PosterCacheErrors.WithLabelValues(tier, operation).Inc()
}

// RecordCacheExpired records entries swept by the cache janitor.
func RecordCacheExpired(cache string, n int) {
	if n > 0 {
		CacheEntriesExpired.WithLabelValues(cache).Add(float64(n))
	}
}

// RecordGalleryPosterFailure records a card that fell back to the placeholder.
func RecordGalleryPosterFailure(reason string) {
	GalleryPosterFailures.WithLabelValues(reason).Inc()
}

// RecordBadgerGC records a value log GC pass.
func RecordBadgerGC(err error) {
	if err != nil {
		BadgerGCRuns.WithLabelValues("error").Inc()
		return
	}
	BadgerGCRuns.WithLabelValues("success").Inc()
}
