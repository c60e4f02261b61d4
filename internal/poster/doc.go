// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package poster caches movie id to poster URL resolutions in front of TMDB.
//
// Lookups try an in-memory LRU first, then the optional persistent tier
// (BadgerDB or Redis, see package cache), then the upstream Source.
// ResolveOrPlaceholder gives the UI a URL it can always render.
package poster
