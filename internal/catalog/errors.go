// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog file holds no movies.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrDimensionMismatch is returned when the matrix shape does not match
	// the catalog length.
	ErrDimensionMismatch = errors.New("similarity matrix dimensions do not match catalog")

	// ErrInvalidScore is returned for NaN or infinite similarity values.
	ErrInvalidScore = errors.New("similarity matrix contains a non-finite score")

	// ErrUnsupportedFormat is returned for file extensions other than .csv and .json.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
