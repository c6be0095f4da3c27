// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/associo/tallysync/internal/adapter"
	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

// clientSyncService is the sync engine: it drains the pending queue in
// capped batches and applies the server's per-record verdicts. At most one
// attempt runs at a time; overlapping requests are rejected with
// [ErrSyncInProgress] instead of queueing up.
type clientSyncService struct {
	server       adapter.ServerAdapter
	visits       store.LocalVisitRepository
	batchCap     int
	historyLimit int
	inFlight     atomic.Bool
	log          zerolog.Logger
}

// NewClientSyncService creates the device sync engine.
func NewClientSyncService(server adapter.ServerAdapter, visits store.LocalVisitRepository, batchCap, historyLimit int, log zerolog.Logger) ClientSyncService {
	return &clientSyncService{
		server:       server,
		visits:       visits,
		batchCap:     batchCap,
		historyLimit: historyLimit,
		log:          log,
	}
}

func (s *clientSyncService) IsSyncing() bool {
	return s.inFlight.Load()
}

// SyncOnce performs one sync attempt. A total transport failure leaves
// every record queued for the next attempt; per-record failures are either
// quarantined (validation verdicts, which retrying cannot change) or left
// queued (transient server faults).
func (s *clientSyncService) SyncOnce(ctx context.Context) (SyncStats, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return SyncStats{}, ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	if !s.server.Ping(ctx) {
		return SyncStats{}, ErrOffline
	}

	pending, err := s.visits.Pending(ctx, s.batchCap)
	if err != nil {
		return SyncStats{}, fmt.Errorf("error reading pending queue: %w", err)
	}
	if len(pending) == 0 {
		return SyncStats{}, nil
	}

	response, err := s.server.SubmitBatch(ctx, models.SyncRequest{Records: pending, Length: len(pending)})
	if err != nil {
		s.log.Warn().Err(err).Int("records", len(pending)).Msg("sync batch failed, records stay queued")
		return SyncStats{Submitted: len(pending), Remaining: len(pending)}, fmt.Errorf("error submitting batch: %w", err)
	}

	stats := s.applyResults(ctx, pending, response.Results)
	s.log.Info().
		Int("submitted", stats.Submitted).
		Int("acked", stats.Acked).
		Int("quarantined", stats.Quarantined).
		Int("remaining", stats.Remaining).
		Msg("sync attempt finished")

	return stats, nil
}

// applyResults matches server verdicts to submitted records by local_id
// and updates the queue accordingly. Records the server did not answer for
// stay queued.
func (s *clientSyncService) applyResults(ctx context.Context, submitted []models.VisitRecord, results []models.SyncResult) SyncStats {
	stats := SyncStats{Submitted: len(submitted)}

	verdicts := make(map[string]models.SyncResult, len(results))
	for _, result := range results {
		verdicts[result.LocalID] = result
	}

	for _, record := range submitted {
		verdict, ok := verdicts[record.LocalID]
		if !ok {
			stats.Remaining++
			continue
		}

		switch {
		case verdict.Success:
			if err := s.visits.Ack(ctx, record.LocalID, s.historyLimit); err != nil {
				// The server persisted the record; a failed ack just
				// means it gets re-submitted and deduplicated next time.
				s.log.Error().Err(err).Str("local_id", record.LocalID).Msg("error acknowledging synced record")
				stats.Remaining++
				continue
			}
			stats.Acked++
			if verdict.Created {
				stats.Created++
			}
		case verdict.Error == resultErrInternal:
			// Transient server fault, worth retrying.
			stats.Remaining++
		default:
			if err := s.visits.Quarantine(ctx, record.LocalID, verdict.Error); err != nil {
				s.log.Error().Err(err).Str("local_id", record.LocalID).Msg("error quarantining rejected record")
				stats.Remaining++
				continue
			}
			stats.Quarantined++
		}
	}

	return stats
}
