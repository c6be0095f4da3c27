// Package workers runs the server's background jobs. Currently that is
// the usage aggregate maintainer, which consumes usage jobs submitted by
// the reconciliation path and applies them to the locality-usage table
// without blocking sync requests.
package workers

import (
	"context"
	"sync"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/service"
)

// UsageWorker is a single-consumer queue of usage jobs. It implements
// [service.UsageJobSink] for the producer side; the consumer side applies
// each job through the usage service.
//
// A single consumer keeps aggregate updates for one questionnaire
// serialised, so increment and recompute never interleave between jobs.
type UsageWorker struct {
	usage service.UsageService
	jobs  chan service.UsageJob
	log   *logger.Logger

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewUsageWorker creates the worker with a bounded job queue of the given
// size.
func NewUsageWorker(usage service.UsageService, queueSize int, log *logger.Logger) *UsageWorker {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &UsageWorker{
		usage: usage,
		jobs:  make(chan service.UsageJob, queueSize),
		log:   log,
	}
}

// Submit offers a job to the queue without blocking. It reports false when
// the queue is full; the caller decides how to account for the miss.
func (w *UsageWorker) Submit(job service.UsageJob) bool {
	select {
	case w.jobs <- job:
		return true
	default:
		return false
	}
}

// Run starts the consumer loop. It returns immediately; Stop drains the
// queue and waits for the loop to finish.
func (w *UsageWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for job := range w.jobs {
			if err := w.usage.ApplyVisit(ctx, job.QuestionnaireID, job.LocalityID); err != nil {
				w.log.Error().
					Err(err).
					Int64("questionnaire_id", job.QuestionnaireID).
					Int64("locality_id", job.LocalityID).
					Msg("error applying usage job")
			}
		}
	}()

	w.log.Info().Int("queue_size", cap(w.jobs)).Msg("usage worker started")
}

// Stop closes the queue and waits until every accepted job is applied.
// Submit must not be called after Stop.
func (w *UsageWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.jobs)
	})
	w.wg.Wait()
	w.log.Info().Msg("usage worker stopped")
}
