// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP layer of Marquee: the JSON API, the HTML
recommender page and the observability routes.

Key Components:

  - Router: chi route tree and middleware stack
  - Handler: request handlers, split by concern across handlers_*.go
  - ResponseWriter: the standard JSON envelope
  - ChiMiddleware: CORS, per-IP rate limiting and security headers

Routes:

	GET /api/v1/health                  status, uptime, catalog size, breaker state
	GET /api/v1/health/live             liveness check
	GET /api/v1/health/ready            readiness check (503 until SetReady)
	GET /api/v1/movies?q=&limit=        catalog listing
	GET /api/v1/movies/{id}/poster      single poster lookup
	GET /api/v1/recommendations?title=  ranked gallery
	GET /metrics                        Prometheus exposition
	GET /swagger/*                      OpenAPI UI
	GET /?title=&theme=                 HTML page

Response Format:

Every JSON response uses the same envelope:

	{
	    "success": true,
	    "data": {...},
	    "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors carry a stable machine-readable code:

	{
	    "success": false,
	    "error": {"code": "NOT_FOUND", "message": "Movie not found", "request_id": "..."},
	    "meta": {...}
	}

Error Mapping:

  - recommend.ErrNotFound: 404 NOT_FOUND
  - recommend.ErrInvalidLimit and parameter validation: 400 VALIDATION_FAILED
  - tmdb.ErrUpstreamUnavailable: 502 UPSTREAM_UNAVAILABLE
  - tmdb.ErrMalformedResponse: 502 MALFORMED_RESPONSE
  - tmdb.ErrNotConfigured: 503 NOT_CONFIGURED

The gallery endpoints never fail because of a poster: failed cards carry the
placeholder and a poster_error code instead.

Usage Example:

	handler, err := api.NewHandler(api.Dependencies{
	    Catalog:  store,
	    Gallery:  galleryService,
	    Posters:  resolver,
	    Upstream: tmdbClient,
	    Engine:   engine,
	    UI:       cfg.UI,
	})
	if err != nil {
	    return err
	}
	handler.SetReady(true)

	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(
	    cfg.Security.CORSOrigins, cfg.Security.RateLimitReqs,
	    cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled))
	http.ListenAndServe(":8501", api.NewRouter(handler, mw).SetupChi())

Thread Safety:

Handler is safe for concurrent use. The catalog is immutable and every
mutable counter behind it is atomic.
*/
package api
