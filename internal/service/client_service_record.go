// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

type clientVisitService struct {
	visits       store.LocalVisitRepository
	ids          IDGenerator
	operatorMode bool
	now          func() time.Time
}

// NewClientVisitService creates the device-side visit capture service.
func NewClientVisitService(visits store.LocalVisitRepository, ids IDGenerator, operatorMode bool) ClientVisitService {
	return &clientVisitService{
		visits:       visits,
		ids:          ids,
		operatorMode: operatorMode,
		now:          time.Now,
	}
}

// Record validates the input, stamps it with a fresh local_id and the
// device clock, and appends it to the durable pending queue.
func (s *clientVisitService) Record(ctx context.Context, input RecordInput) (models.VisitRecord, error) {
	if input.AdultCount < 0 || input.ChildCount < 0 {
		return models.VisitRecord{}, ErrNegativeCounts
	}
	if input.AdultCount+input.ChildCount == 0 {
		return models.VisitRecord{}, ErrEmptyCounts
	}

	now := s.now()
	occurredAt := now
	if input.OccurredAt != nil && s.operatorMode {
		occurredAt = *input.OccurredAt
	}

	record := models.VisitRecord{
		LocalID:         s.ids.Generate(),
		QuestionnaireID: input.QuestionnaireID,
		SiteID:          input.SiteID,
		LocalityID:      input.LocalityID,
		AdultCount:      input.AdultCount,
		ChildCount:      input.ChildCount,
		OccurredAt:      occurredAt,
		EnqueuedAt:      now,
		SyncState:       models.SyncStateLocal,
	}

	if err := s.visits.Enqueue(ctx, record); err != nil {
		return models.VisitRecord{}, fmt.Errorf("error enqueueing visit record: %w", err)
	}

	return record, nil
}

func (s *clientVisitService) Pending(ctx context.Context) ([]models.VisitRecord, error) {
	return s.visits.Pending(ctx, 0)
}

func (s *clientVisitService) History(ctx context.Context) ([]models.VisitRecord, error) {
	return s.visits.History(ctx)
}

func (s *clientVisitService) Quarantined(ctx context.Context) ([]models.QuarantinedVisit, error) {
	return s.visits.Quarantined(ctx)
}
