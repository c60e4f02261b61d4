// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
)

const (
	// DefaultGCInterval matches cache.gc_interval's default.
	DefaultGCInterval = 10 * time.Minute

	// DefaultGCDiscardRatio rewrites value log files that are at least half garbage.
	DefaultGCDiscardRatio = 0.5
)

// ValueLogCollector reclaims value log space. *cache.BadgerStore implements it.
type ValueLogCollector interface {
	RunGC(discardRatio float64) (int, error)
}

// BadgerGCService runs Badger value log GC on an interval. Poster entries
// expire by TTL, and their space is only returned once GC rewrites the log.
type BadgerGCService struct {
	collector    ValueLogCollector
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewBadgerGCService creates the GC service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerGCService(collector ValueLogCollector, interval time.Duration, logger zerolog.Logger) *BadgerGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &BadgerGCService{
		collector:    collector,
		interval:     interval,
		discardRatio: DefaultGCDiscardRatio,
		logger:       logger.With().Str("service", "badger-gc").Logger(),
		name:         "badger-gc",
	}
}

// Serve implements suture.Service. A failed GC pass is logged and retried on
// the next tick; it never restarts the service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *BadgerGCService) runOnce() {
	start := time.Now()
	rewritten, err := s.collector.RunGC(s.discardRatio)
	metrics.RecordBadgerGC(err)

	if err != nil {
		s.logger.Warn().Err(err).Msg("value log GC failed")
		return
	}
	s.logger.Debug().
		Int("rewritten", rewritten).
		Dur("duration", time.Since(start)).
		Msg("value log GC complete")
}

// String returns the service name for logging.
func (s *BadgerGCService) String() string {
	return s.name
}
