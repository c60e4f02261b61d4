// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package gallery builds the recommendation cards shown on the page and
// returned by the API. Posters are fetched in a bounded worker pool and the
// cards keep their rank order.
package gallery
