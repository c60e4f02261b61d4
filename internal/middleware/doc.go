// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware shared by the API and the HTML page.

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauges labelled by
    chi route pattern
  - Compression: gzip for clients that accept it
  - AccessLog: one structured zerolog line per request, warn level for slow or
    failed requests

RequestID, PrometheusMetrics and Compression take and return http.HandlerFunc;
the api package adapts them for chi's r.Use. AccessLog is already in chi form.
*/
package middleware
