// Package metrics provides Prometheus observability for the
// reconciliation server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the reconciliation hot path: how many visits were
// persisted, deduplicated, or rejected, and how large submitted batches
// are.
type Metrics struct {
	VisitsPersisted  prometheus.Counter
	VisitsDuplicate  prometheus.Counter
	VisitsRejected   prometheus.Counter
	SyncBatchSize    prometheus.Histogram
	UsageJobsDropped prometheus.Counter
}

// New creates a Metrics instance registered on reg. Passing nil registers
// on the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		VisitsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "tallysync_visits_persisted_total",
			Help: "Total number of visit records persisted (created=true)",
		}),
		VisitsDuplicate: factory.NewCounter(prometheus.CounterOpts{
			Name: "tallysync_visits_duplicate_total",
			Help: "Total number of idempotent no-ops (local_id already persisted)",
		}),
		VisitsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "tallysync_visits_rejected_total",
			Help: "Total number of visit records rejected by validation",
		}),
		SyncBatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tallysync_sync_batch_size",
			Help:    "Number of records per submitted sync batch",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
		UsageJobsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "tallysync_usage_jobs_dropped_total",
			Help: "Usage aggregate jobs dropped because the queue was full",
		}),
	}
}
