package scheduler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Work is one unit of background work.
type Work func(ctx context.Context) error

// Scheduler dispatches queued work to a fixed number of workers. The server
// uses it to generate the per-customer synthetic datasets concurrently at
// startup.
type Scheduler struct {
	work    chan Work
	wg      sync.WaitGroup
	mainCtx context.Context
	cancel  context.CancelFunc
}

func NewScheduler(nbWorkers int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		work:    make(chan Work),
		mainCtx: ctx,
		cancel:  cancel,
	}
	for range nbWorkers {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// AddWork queues one unit of work. It must not be called after Close.
func (s *Scheduler) AddWork(w Work) {
	s.work <- w
}

// Close stops accepting work and blocks until every queued unit has run.
func (s *Scheduler) Close() {
	close(s.work)
	s.wg.Wait()
	s.cancel()
}

func (s *Scheduler) worker() {
	defer s.wg.Done()
	for w := range s.work {
		if err := w(s.mainCtx); err != nil {
			zap.S().Named("scheduler").Errorw("work failed", "error", err)
		}
	}
}
