// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/logger"
)

// SessionPurger deletes expired session rows.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper removes expired sessions on a fixed interval. Session
// resolution rejects expired rows on its own; the sweeper only keeps the
// table small.
type SessionSweeper struct {
	sessions SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions SessionPurger, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once right away and then on every tick until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep runs a single purge and logs its outcome.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	n, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*SessionSweeper.Sweep").Msg("error purging expired sessions")
		}
		return 0
	}
	if n > 0 {
		s.logger.Info().Int64("deleted", n).Msg("expired sessions purged")
	}
	return n
}
