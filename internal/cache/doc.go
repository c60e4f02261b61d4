// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides the in-memory and persistent caches used for ranked
recommendation results and resolved poster URLs.

# Components

  - LRU: generic, thread-safe, capacity-bounded LRU with per-entry TTL
  - Store: interface for an optional persistent second tier
  - BadgerStore: embedded BadgerDB store with native key TTL
  - RedisStore: shared Redis store with key TTL

# Usage

	results := cache.NewLRU[string, []int](1024, time.Hour)
	results.Add("Avatar|5", ranked)
	if ranked, ok := results.Get("Avatar|5"); ok {
	    // ...
	}

	store, err := cache.OpenBadger("/data/poster-cache")
	if err != nil {
	    return err
	}
	defer store.Close()

# Expiration

LRU entries expire lazily on Get. CleanupExpired sweeps everything at once and
is run periodically by the supervisor's cache janitor service. BadgerStore
reclaims disk space through RunGC, driven by the badger GC service.
*/
package cache
