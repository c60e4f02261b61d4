// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend ranks catalog movies by a precomputed similarity matrix.
//
// # Algorithm
//
// For a requested title the engine finds its catalog row, pairs every other
// column index with its score, and sorts by score descending with ties broken
// by ascending index. The queried movie is excluded by index, so it never
// recommends itself even when its self-score is not the row maximum. The first
// K entries are returned; K defaults to 5.
//
// # Determinism
//
// The same catalog, matrix and request always produce the same ordering. This
// makes results safe to cache, and the engine keeps an LRU of ranked results
// keyed by title and K.
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, recommend.Request{Title: "Avatar"})
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // unknown title
//	}
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog is immutable and the
// result cache is internally synchronized.
package recommend
