package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/throttle"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the sweepers. Validated configuration always carries a
// positive interval; a non-positive one, possible only when cfg is built by
// hand, yields no workers. The login throttle is compacted only when it
// keeps its records in memory.
func NewWorkers(services *service.Services, loginThrottle throttle.LoginThrottle, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SessionSweepInterval <= 0 {
		return w
	}

	w.workers = append(w.workers, NewSessionSweeper(services.SessionService, cfg.SessionSweepInterval, logger))
	if sweepable, ok := loginThrottle.(Sweepable); ok {
		w.workers = append(w.workers, NewThrottleSweeper(sweepable, cfg.SessionSweepInterval, logger))
	}
	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
