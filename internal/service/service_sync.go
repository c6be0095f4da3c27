// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/associo/tallysync/internal/metrics"
	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

// syncService reconciles submitted batches against the server store.
// Every record is processed independently: validation failures and
// storage errors for one record never affect its siblings, and a record
// whose local_id is already persisted is acknowledged as success without
// any side effects.
type syncService struct {
	visits     store.VisitRepository
	localities store.LocalityRepository
	campaigns  store.CampaignRepository
	usageJobs  UsageJobSink
	metrics    *metrics.Metrics
}

// NewSyncService creates the server-side reconciliation service.
func NewSyncService(
	visits store.VisitRepository,
	localities store.LocalityRepository,
	campaigns store.CampaignRepository,
	usageJobs UsageJobSink,
	m *metrics.Metrics,
) SyncService {
	return &syncService{
		visits:     visits,
		localities: localities,
		campaigns:  campaigns,
		usageJobs:  usageJobs,
		metrics:    m,
	}
}

// Reconcile persists the batch record by record and returns one result per
// record, matched by local_id. The returned error is non-nil only for
// request-level failures; per-record outcomes are carried in the response.
func (s *syncService) Reconcile(ctx context.Context, session models.DeviceSession, req models.SyncRequest) (models.SyncResponse, error) {
	logger := zerolog.Ctx(ctx)
	s.metrics.SyncBatchSize.Observe(float64(len(req.Records)))

	results := make([]models.SyncResult, 0, len(req.Records))
	for _, record := range req.Records {
		results = append(results, s.reconcileOne(ctx, session, record))
	}

	logger.Info().
		Str("device_id", session.DeviceID).
		Int("records", len(req.Records)).
		Msg("sync batch reconciled")

	return models.SyncResponse{Results: results, Length: len(results)}, nil
}

func (s *syncService) reconcileOne(ctx context.Context, session models.DeviceSession, record models.VisitRecord) models.SyncResult {
	logger := zerolog.Ctx(ctx)

	if err := s.validate(ctx, session, record); err != nil {
		if errors.Is(err, errValidationStore) {
			// Not a verdict on the record: the store failed underneath
			// the check. Report the retryable error so the device keeps
			// the record queued instead of quarantining it.
			logger.Error().
				Err(err).
				Str("local_id", record.LocalID).
				Msg("error validating visit record")
			return models.SyncResult{LocalID: record.LocalID, Error: resultErrInternal}
		}

		s.metrics.VisitsRejected.Inc()
		logger.Warn().
			Err(err).
			Str("local_id", record.LocalID).
			Str("device_id", session.DeviceID).
			Msg("visit record rejected")
		return models.SyncResult{LocalID: record.LocalID, Error: err.Error()}
	}

	created, err := s.visits.SaveVisit(ctx, record)
	if err != nil {
		logger.Error().
			Err(err).
			Str("local_id", record.LocalID).
			Msg("error saving visit record")
		return models.SyncResult{LocalID: record.LocalID, Error: resultErrInternal}
	}

	if created {
		s.metrics.VisitsPersisted.Inc()
		s.submitUsageJob(ctx, record)
	} else {
		// The row already exists from an earlier submission. Acknowledge
		// without touching the usage aggregate a second time.
		s.metrics.VisitsDuplicate.Inc()
	}

	return models.SyncResult{LocalID: record.LocalID, Success: true, Created: created}
}

// validate applies the creation invariants and the credential scope to one
// submitted record. Rejections are safe to echo to the device; storage
// faults are wrapped in errValidationStore and must not be.
func (s *syncService) validate(ctx context.Context, session models.DeviceSession, record models.VisitRecord) error {
	if _, err := uuid.Parse(record.LocalID); err != nil {
		return ErrInvalidLocalID
	}
	if record.AdultCount < 0 || record.ChildCount < 0 {
		return ErrNegativeCounts
	}
	if record.TotalCount() == 0 {
		return ErrEmptyCounts
	}
	if record.QuestionnaireID != session.QuestionnaireID {
		return ErrQuestionnaireOutOfScope
	}
	if !session.AllowsSite(record.SiteID) {
		return ErrSiteOutOfScope
	}

	questionnaire, err := s.campaigns.GetQuestionnaire(ctx, record.QuestionnaireID)
	if err != nil {
		if errors.Is(err, store.ErrQuestionnaireNotFound) {
			return ErrQuestionnaireOutOfScope
		}
		return fmt.Errorf("%w: loading questionnaire: %w", errValidationStore, err)
	}
	if !questionnaire.Active {
		return ErrQuestionnaireInactive
	}

	if record.LocalityID != nil {
		exists, err := s.localities.LocalityExists(ctx, *record.LocalityID)
		if err != nil {
			return fmt.Errorf("%w: checking locality: %w", errValidationStore, err)
		}
		if !exists {
			return ErrUnknownLocality
		}
	}

	return nil
}

// submitUsageJob hands the aggregate update to the background maintainer.
// A full queue is logged and tolerated: the ranking catches up with the
// next counted visit, while the device's sync request must not block.
func (s *syncService) submitUsageJob(ctx context.Context, record models.VisitRecord) {
	if record.LocalityID == nil {
		return
	}

	job := UsageJob{QuestionnaireID: record.QuestionnaireID, LocalityID: *record.LocalityID}
	if !s.usageJobs.Submit(job) {
		s.metrics.UsageJobsDropped.Inc()
		zerolog.Ctx(ctx).Warn().
			Int64("questionnaire_id", job.QuestionnaireID).
			Int64("locality_id", job.LocalityID).
			Msg("usage job queue full, aggregate update skipped")
	}
}
