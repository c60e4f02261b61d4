// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package tmdb resolves movie posters through The Movie Database v3 API.

A lookup issues GET {base}/movie/{id}?api_key=...&language=... and reads
poster_path from the JSON body. The path is joined to the image base with
BuildImageURL.

# Resilience

Each call passes through, in order:
  - a per-call timeout (default 5s)
  - a circuit breaker ("tmdb-api") that opens at 60% failures over at least
    10 requests and half-opens after 2 minutes
  - bounded retries with exponential backoff for transport errors, 429 and 5xx
  - a token bucket limiter shared by all callers

# Errors

All failures map to one of three sentinels:

	ErrNotConfigured       no API key; nothing is sent
	ErrUpstreamUnavailable network, timeout, open circuit or non-200 status
	ErrMalformedResponse   invalid JSON or missing poster_path

Malformed responses do not count against the circuit breaker. The API key
never appears in returned errors or logs.
*/
package tmdb
