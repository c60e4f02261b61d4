// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/logging"
)

// PosterResult is the payload of GET /movies/{id}/poster.
type PosterResult struct {
	MovieID   int64  `json:"movie_id"`
	PosterURL string `json:"poster_url"`
}

// Movies lists catalog entries
//
// @Summary List catalog movies
// @Description Returns catalog titles and ids in catalog order. q filters by case-insensitive substring.
// @Tags Movies
// @Produce json
// @Param q query string false "Title substring"
// @Param limit query int false "Maximum results (1-1000)" default(100)
// @Success 200 {object} APIResponse{data=[]catalog.Movie} "Matching movies"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", DefaultMoviesLimit)
	if err != nil {
		respondParamError(rw, err)
		return
	}

	req := MoviesRequest{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if !h.ready.Load() {
		respondDomainError(rw, r, ErrCatalogNotReady)
		return
	}

	// One extra row tells us whether the result was truncated.
	movies := h.deps.Catalog.Search(req.Query, req.Limit+1)
	hasMore := len(movies) > req.Limit
	if hasMore {
		movies = movies[:req.Limit]
	}

	rw.SuccessWithPagination(movies, &PaginationMeta{
		Count:   len(movies),
		Limit:   req.Limit,
		HasMore: hasMore,
	})
}

// MoviePoster resolves the poster of one movie
//
// @Summary Resolve a movie poster
// @Description Returns the full poster URL for a TMDB movie id. Unlike the gallery, failures are reported rather than replaced by the placeholder.
// @Tags Movies
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} APIResponse{data=PosterResult} "Poster resolved"
// @Failure 400 {object} APIResponse "Invalid movie id"
// @Failure 502 {object} APIResponse "TMDB unavailable or returned an unusable response"
// @Failure 503 {object} APIResponse "TMDB key not configured"
// @Router /movies/{id}/poster [get]
func (h *Handler) MoviePoster(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathInt64("id", chi.URLParam(r, "id"))
	if err != nil {
		respondParamError(rw, err)
		return
	}

	req := PosterRequest{MovieID: id}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	url, err := h.deps.Posters.Resolve(r.Context(), req.MovieID)
	if err != nil {
		respondDomainError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().Int64("movie_id", req.MovieID).Msg("Poster resolved")
	rw.Success(PosterResult{MovieID: req.MovieID, PosterURL: url})
}
