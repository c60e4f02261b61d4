// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides centralized zerolog-based structured logging for Marquee.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", 4803).Msg("Catalog loaded")
//	logging.Error().Err(err).Int64("movie_id", id).Msg("Poster resolution failed")
//
//	// Request-scoped logging carries request_id and correlation_id
//	logging.Ctx(ctx).Info().Str("title", title).Msg("Recommendations served")
//
// # Configuration
//
// Environment variables (mapped through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
//   - LOG_FILE: write to a rotating file instead of stderr
//
// When LOG_FILE is set the file is rotated by lumberjack according to
// LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS and LOG_MAX_AGE_DAYS.
//
// # Suture Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog, which is what
// sutureslog expects for supervisor event hooks.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
