// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/marquee/internal/gallery"
	"github.com/tomtom215/marquee/internal/logging"
)

// Recommendations returns the ranked gallery for a title
//
// @Summary Get similar movies
// @Description Returns the most similar catalog movies to title, best first, with poster URLs. A failed poster is replaced by the placeholder and flagged with poster_error. posters=false skips TMDB entirely.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact catalog title"
// @Param limit query int false "Number of recommendations, 0 for the configured default" default(0)
// @Param posters query bool false "Resolve posters through TMDB" default(true)
// @Success 200 {object} APIResponse{data=gallery.Gallery} "Ranked gallery"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Failure 404 {object} APIResponse "Title not in catalog"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondParamError(rw, err)
		return
	}
	posters, err := queryBool(r, "posters", true)
	if err != nil {
		respondParamError(rw, err)
		return
	}

	req := RecommendationsRequest{
		Title:   strings.TrimSpace(r.URL.Query().Get("title")),
		Limit:   limit,
		Posters: posters,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if !h.ready.Load() {
		respondDomainError(rw, r, ErrCatalogNotReady)
		return
	}

	g, err := h.deps.Gallery.BuildWithOptions(r.Context(), req.Title, req.Limit, gallery.Options{
		SkipPosters: !req.Posters,
	})
	if err != nil {
		respondDomainError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Int("cards", len(g.Cards)).
		Bool("cache_hit", g.CacheHit).
		Msg("Recommendations served")

	rw.Success(g)
}
