// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status         string           `json:"status"` // "healthy" or "degraded"
	Version        string           `json:"version"`
	Uptime         float64          `json:"uptime_seconds"`
	Ready          bool             `json:"ready"`
	CatalogSize    int              `json:"catalog_size"`
	TMDBConfigured bool             `json:"tmdb_configured"`
	CircuitBreaker string           `json:"circuit_breaker"`
	CacheBackend   string           `json:"cache_backend"`
	CacheHealthy   bool             `json:"cache_healthy"`
	CacheError     string           `json:"cache_error,omitempty"`
	Recommend      *recommend.Stats `json:"recommend,omitempty"`
	PosterCache    cache.Stats      `json:"poster_cache"`
}

// cacheCheckTimeout bounds the poster cache backend check in Health.
const cacheCheckTimeout = 2 * time.Second

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns status, uptime, catalog size, TMDB circuit-breaker state and poster cache backend reachability
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:         "healthy",
		Version:        h.deps.Version,
		Uptime:         time.Since(h.startTime).Seconds(),
		Ready:          h.ready.Load(),
		CatalogSize:    h.deps.Catalog.Len(),
		CircuitBreaker: "unknown",
		CacheBackend:   h.deps.Posters.Backend(),
		CacheHealthy:   true,
		PosterCache:    h.deps.Posters.Stats(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), cacheCheckTimeout)
	defer cancel()
	if err := h.deps.Posters.CheckBackend(ctx); err != nil {
		health.CacheHealthy = false
		health.CacheError = err.Error()
		logging.Ctx(r.Context()).Warn().Err(err).Str("backend", health.CacheBackend).Msg("Poster cache backend check failed")
	}

	if h.deps.Upstream != nil {
		health.TMDBConfigured = h.deps.Upstream.Configured()
		health.CircuitBreaker = h.deps.Upstream.BreakerState()
	}
	if h.deps.Engine != nil {
		stats := h.deps.Engine.Stats()
		health.Recommend = &stats
	}

	// Posters degrade to the placeholder while the breaker is open, and to
	// upstream-only lookups while the cache backend is down.
	if !health.Ready || health.CircuitBreaker == "open" || !health.CacheHealthy {
		health.Status = "degraded"
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive handles liveness check requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness check
// @Description Returns 200 OK if the process is alive.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests (Kubernetes-style)
// Returns 200 OK only once the catalog is loaded and the handler marked ready
//
// @Summary Kubernetes readiness check
// @Description Returns 200 OK once the catalog is loaded. Returns 503 before that.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.ready.Load() && h.deps.Catalog.Len() > 0

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	NewResponseWriter(w, r).SuccessWithStatus(statusCode, map[string]interface{}{
		"status":       status,
		"catalog_size": h.deps.Catalog.Len(),
	}, nil)
}
