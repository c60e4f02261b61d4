// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

// Request structs carry go-playground/validator tags. The query tag names the
// parameter reported in validation errors.
//
// Example usage:
//
//	limit, err := queryInt(r, "limit", DefaultMoviesLimit)
//	...
//	req := MoviesRequest{Query: r.URL.Query().Get("q"), Limit: limit}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}

// DefaultMoviesLimit is the page size of /movies when no limit is given.
const DefaultMoviesLimit = 100

// MoviesRequest holds the validated query parameters for /movies.
//
// Fields:
//   - Query: case-insensitive title substring, empty matches everything
//   - Limit: maximum movies to return (1-1000, default 100)
type MoviesRequest struct {
	Query string `query:"q" validate:"max=200"`
	Limit int    `query:"limit" validate:"min=1,max=1000"`
}

// RecommendationsRequest holds the validated query parameters for /recommendations.
//
// Fields:
//   - Title: exact catalog title
//   - Limit: number of recommendations, 0 selects the configured default
//   - Posters: resolve posters through TMDB (default true)
type RecommendationsRequest struct {
	Title   string `query:"title" validate:"required,max=500,movietitle"`
	Limit   int    `query:"limit" validate:"min=0,max=1000"`
	Posters bool   `query:"posters"`
}

// PosterRequest holds the validated path parameter for /movies/{id}/poster.
type PosterRequest struct {
	MovieID int64 `query:"id" validate:"gt=0"`
}
