// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package catalog loads the movie catalog and its precomputed similarity matrix.

The catalog is an ordered list of movies. A movie's position is its row and
column index into the similarity matrix, so both artifacts must be produced
by the same pipeline run.

# Formats

Catalog files are chosen by extension:
  - .csv: header row with movie_id and title columns, extra columns ignored
  - .json: array of {"movie_id": 19995, "title": "Avatar"}

Similarity files:
  - .json: array of arrays of numbers
  - .csv: one row per line, no header

# Thread Safety

A Store is immutable after construction. All methods are safe for concurrent
use without locking.
*/
package catalog
