// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package gallery

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// DefaultMaxConcurrency bounds poster lookups per gallery.
const DefaultMaxConcurrency = 5

// Recommender ranks neighbours for a title. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// PosterResolver turns a movie id into a displayable URL. *poster.Resolver
// satisfies it.
type PosterResolver interface {
	ResolveOrPlaceholder(ctx context.Context, movieID int64) (string, error)
	Placeholder() string
}

// Card is one recommended movie ready for display.
type Card struct {
	Rank      int     `json:"rank"`
	MovieID   int64   `json:"movie_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url"`

	// PosterError is a stable code when the placeholder was substituted.
	PosterError string `json:"poster_error,omitempty"`
}

// Gallery is the ranked set of cards for one query.
type Gallery struct {
	Query     catalog.Movie `json:"query"`
	Cards     []Card        `json:"cards"`
	RequestID string        `json:"request_id"`
	CacheHit  bool          `json:"cache_hit"`
	Posters   bool          `json:"posters"`
}

// Options tunes a single Build.
type Options struct {
	// SkipPosters fills every card with the placeholder without calling TMDB.
	SkipPosters bool
}

// Service composes similarity lookup and poster resolution.
type Service struct {
	recommender    Recommender
	posters        PosterResolver
	maxConcurrency int
}

// NewService creates a gallery service.
func NewService(rec Recommender, posters PosterResolver, maxConcurrency int) *Service {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Service{
		recommender:    rec,
		posters:        posters,
		maxConcurrency: maxConcurrency,
	}
}

// Build ranks up to k neighbours of title and resolves their posters.
func (s *Service) Build(ctx context.Context, title string, k int) (*Gallery, error) {
	return s.BuildWithOptions(ctx, title, k, Options{})
}

// BuildWithOptions is Build with per-call options.
//
// recommend.ErrNotFound and recommend.ErrInvalidLimit propagate unchanged.
// Poster failures never fail the gallery; the card gets the placeholder and
// a PosterError code.
func (s *Service) BuildWithOptions(ctx context.Context, title string, k int, opts Options) (*Gallery, error) {
	resp, err := s.recommender.Recommend(ctx, recommend.Request{
		Title:     title,
		K:         k,
		RequestID: logging.RequestIDFromContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("build gallery: %w", err)
	}

	cards := make([]Card, len(resp.Items))
	for i, item := range resp.Items {
		cards[i] = Card{
			Rank:      item.Rank,
			MovieID:   item.Movie.ID,
			Title:     item.Movie.Title,
			Score:     item.Score,
			PosterURL: s.posters.Placeholder(),
		}
	}

	if !opts.SkipPosters {
		s.resolvePosters(ctx, cards)
	}

	return &Gallery{
		Query:     resp.Query,
		Cards:     cards,
		RequestID: resp.Metadata.RequestID,
		CacheHit:  resp.Metadata.CacheHit,
		Posters:   !opts.SkipPosters,
	}, nil
}

// resolvePosters fills cards in place. Each goroutine owns one index, so the
// rank order is untouched.
func (s *Service) resolvePosters(ctx context.Context, cards []Card) {
	logger := logging.Ctx(ctx)
	p := pool.New().WithMaxGoroutines(s.maxConcurrency)

	for i := range cards {
		card := &cards[i]
		p.Go(func() {
			url, err := s.posters.ResolveOrPlaceholder(ctx, card.MovieID)
			card.PosterURL = url
			if err == nil {
				return
			}

			code := tmdb.ErrorCode(err)
			if code == "" {
				code = tmdb.CodeUpstreamUnavailable
			}
			card.PosterError = code
			metrics.RecordGalleryPosterFailure(code)
			logger.Warn().Err(err).Int64("movie_id", card.MovieID).Str("poster_error", code).Msg("Using placeholder poster")
		})
	}

	p.Wait()
}
