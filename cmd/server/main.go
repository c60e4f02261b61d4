// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/marquee/docs" // Import generated swagger docs
	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/gallery"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/poster"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(buildLoggingConfig(cfg))
	defer func() {
		if err := logging.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing log file")
		}
	}()

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("tmdb_enabled", cfg.TMDBEnabled()).
		Msg("Starting Marquee")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog and similarity matrix are required; without them nothing works.
	store, err := catalog.Load(ctx, cfg.Catalog.CatalogPath, cfg.Catalog.SimilarityPath)
	if err != nil {
		logging.Fatal().Err(err).
			Str("catalog", cfg.Catalog.CatalogPath).
			Str("similarity", cfg.Catalog.SimilarityPath).
			Msg("Failed to load catalog")
	}
	metrics.CatalogMovies.Set(float64(store.Len()))
	logging.Info().Int("movies", store.Len()).Msg("Catalog loaded")

	engine, err := recommend.NewEngine(store, buildRecommendConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	tmdbClient := tmdb.NewClient(buildTMDBConfig(cfg))
	if !tmdbClient.Configured() {
		logging.Warn().Msg("TMDB_API_KEY not set - every poster will use the placeholder image")
	}

	posterCache, err := openPosterStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open poster cache")
	}
	defer func() {
		if err := posterCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster cache")
		}
	}()

	resolver := poster.NewResolver(tmdbClient, posterCache.store, buildPosterConfig(cfg))
	logging.Info().Str("backend", resolver.Backend()).Msg("Poster resolver initialized")

	galleryService := gallery.NewService(engine, resolver, cfg.Gallery.MaxConcurrency)

	handler, err := api.NewHandler(api.Dependencies{
		Catalog:  store,
		Gallery:  galleryService,
		Posters:  resolver,
		Upstream: tmdbClient,
		Engine:   engine,
		UI:       cfg.UI,
		Version:  version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	handler.SetReady(true)

	chiMiddleware := api.NewChiMiddleware(api.NewChiMiddlewareConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	))
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	tree.AddMaintenanceService(services.NewCacheJanitorService(map[string]services.Sweeper{
		"similar": engine,
		"posters": resolver,
	}, services.DefaultJanitorInterval, logging.WithComponent("supervisor")))

	if posterCache.gc != nil {
		tree.AddMaintenanceService(services.NewBadgerGCService(
			posterCache.gc, cfg.Cache.GCInterval, logging.WithComponent("supervisor")))
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		handler.SetReady(false)
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Marquee stopped")
}
