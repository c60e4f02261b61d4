// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee's long-running
components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and returns ctx.Err() once its context is canceled.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Graceful Shutdown with a bounded timeout on cancellation
  - A bind failure is returned so the supervisor can retry with backoff

Cache Janitor (CacheJanitorService):
  - Sweeps expired entries from the similarity and poster memory caches
  - Records cache_entries_expired_total per cache name

Badger GC (BadgerGCService):
  - Runs value log GC for the persistent poster cache
  - Records badger_gc_runs_total by outcome
  - Only registered when cache.backend is "badger"

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	tree.AddMaintenanceService(services.NewCacheJanitorService(map[string]services.Sweeper{
	    "similar": engine,
	    "posters": resolver,
	}, services.DefaultJanitorInterval, logger))
*/
package services
