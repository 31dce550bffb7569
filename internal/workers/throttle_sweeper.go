package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/logger"
)

// Sweepable is implemented by in-memory stores that can drop stale records
// eagerly.
type Sweepable interface {
	Sweep() int
}

// ThrottleSweeper compacts the in-memory login throttle. Records expire on
// read regardless; sweeping only bounds memory held by addresses that never
// come back.
type ThrottleSweeper struct {
	throttle Sweepable
	interval time.Duration
	logger   *logger.Logger
}

func NewThrottleSweeper(throttle Sweepable, interval time.Duration, logger *logger.Logger) *ThrottleSweeper {
	return &ThrottleSweeper{throttle: throttle, interval: interval, logger: logger}
}

func (s *ThrottleSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.throttle.Sweep(); n > 0 {
				s.logger.Debug().Int("dropped", n).Msg("stale login throttle records dropped")
			}
		}
	}
}
