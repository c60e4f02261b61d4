// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"fmt"
	"html/template"
	"sync/atomic"
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/gallery"
	"github.com/tomtom215/marquee/internal/recommend"
)

// CatalogView is the read-only catalog surface the handlers need.
// *catalog.Store implements it.
type CatalogView interface {
	Len() int
	Titles() []string
	Search(query string, limit int) []catalog.Movie
}

// GalleryBuilder builds ranked galleries. *gallery.Service implements it.
type GalleryBuilder interface {
	BuildWithOptions(ctx context.Context, title string, k int, opts gallery.Options) (*gallery.Gallery, error)
}

// PosterLookup resolves single posters. *poster.Resolver implements it.
type PosterLookup interface {
	Resolve(ctx context.Context, movieID int64) (string, error)
	Placeholder() string
	Backend() string
	CheckBackend(ctx context.Context) error
	Stats() cache.Stats
}

// UpstreamStatus reports TMDB client health. *tmdb.Client implements it.
type UpstreamStatus interface {
	Configured() bool
	BreakerState() string
}

// EngineStats exposes similarity lookup counters. *recommend.Engine implements it.
type EngineStats interface {
	Stats() recommend.Stats
}

// Dependencies are the components the handlers serve from.
type Dependencies struct {
	Catalog  CatalogView
	Gallery  GalleryBuilder
	Posters  PosterLookup
	Upstream UpstreamStatus
	Engine   EngineStats
	UI       config.UIConfig
	Version  string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: parameter parsing and validation helpers
//   - handlers_health.go: health, liveness and readiness endpoints
//   - handlers_movies.go: catalog listing and single poster lookup
//   - handlers_recommend.go: ranked gallery endpoint
//   - handlers_ui.go: HTML page
type Handler struct {
	deps      Dependencies
	startTime time.Time
	ready     atomic.Bool
	page      *template.Template
}

// NewHandler creates the API handler. Catalog, Gallery and Posters are
// required; Upstream and Engine may be nil.
//
// The handler starts not ready. Call SetReady once startup has finished.
//
// Example:
//
//	handler, err := api.NewHandler(api.Dependencies{...})
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg))
//	http.ListenAndServe(":8501", router.SetupChi())
func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Catalog == nil || deps.Gallery == nil || deps.Posters == nil {
		return nil, fmt.Errorf("catalog, gallery and posters are required")
	}

	page, err := parsePageTemplate()
	if err != nil {
		return nil, err
	}

	if deps.Version == "" {
		deps.Version = "dev"
	}

	return &Handler{
		deps:      deps,
		startTime: time.Now(),
		page:      page,
	}, nil
}

// SetReady marks the service as ready for traffic.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports whether SetReady(true) has been called.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}
