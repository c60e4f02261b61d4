// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main provides the Marquee HTTP server
//
// Marquee looks up a movie in a pre-built catalog, ranks the rest of the
// catalog by precomputed similarity and shows the closest matches with their
// TMDB posters.
//
// @title Marquee API
// @version 1.0
// @description Movie recommendation lookup and poster gallery
// @description
// @description ## Features
// @description
// @description - **Similarity lookup**: top-K neighbours from a precomputed matrix, best first
// @description - **Poster resolution**: TMDB poster URLs behind a circuit breaker and a two-tier cache
// @description - **Graceful degradation**: failed posters fall back to a placeholder image
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Movie not found",
// @description     "request_id": "..."
// @description   },
// @description   "meta": {
// @description     "request_id": "...",
// @description     "timestamp": "2026-01-18T12:34:56Z",
// @description     "duration_ms": 1
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness and status endpoints
//
// @tag.name Movies
// @tag.description Catalog listing and single poster lookup
//
// @tag.name Recommendations
// @tag.description Ranked galleries of similar movies
package main
