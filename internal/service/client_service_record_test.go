package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/mock"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/internal/store"
)

func newTestVisitRepository(t *testing.T) store.LocalVisitRepository {
	t.Helper()

	kv, err := store.NewLocalStore(context.Background(), filepath.Join(t.TempDir(), "device.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return store.NewLocalVisitRepository(kv, logger.Nop())
}

func TestClientVisitService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	visits := newTestVisitRepository(t)
	svc := service.NewClientVisitService(visits, ids, false)

	ids.EXPECT().Generate().Return(testLocalID)

	localityID := int64(10)
	recorded, err := svc.Record(testContext(), service.RecordInput{
		QuestionnaireID: 1,
		SiteID:          2,
		LocalityID:      &localityID,
		AdultCount:      2,
		ChildCount:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, testLocalID, recorded.LocalID)
	assert.Equal(t, 3, recorded.TotalCount())
	assert.Equal(t, recorded.EnqueuedAt, recorded.OccurredAt)
	assert.False(t, recorded.EnqueuedAt.IsZero())

	pending, err := svc.Pending(testContext())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, testLocalID, pending[0].LocalID)
}

func TestClientVisitService_Record_RejectsInvalidCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewClientVisitService(newTestVisitRepository(t), mock.NewMockIDGenerator(ctrl), false)

	_, err := svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2})
	assert.ErrorIs(t, err, service.ErrEmptyCounts)

	_, err = svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2, AdultCount: -1, ChildCount: 5})
	assert.ErrorIs(t, err, service.ErrNegativeCounts)
}

func TestClientVisitService_Record_TimestampOverrideNeedsOperatorMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	override := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("operator mode honors override", func(t *testing.T) {
		ids := mock.NewMockIDGenerator(ctrl)
		ids.EXPECT().Generate().Return(testLocalID)
		svc := service.NewClientVisitService(newTestVisitRepository(t), ids, true)

		recorded, err := svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2, AdultCount: 1, OccurredAt: &override})
		require.NoError(t, err)

		assert.True(t, recorded.OccurredAt.Equal(override))
		assert.False(t, recorded.EnqueuedAt.Equal(override))
	})

	t.Run("normal mode ignores override", func(t *testing.T) {
		ids := mock.NewMockIDGenerator(ctrl)
		ids.EXPECT().Generate().Return(testLocalID2)
		svc := service.NewClientVisitService(newTestVisitRepository(t), ids, false)

		recorded, err := svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2, AdultCount: 1, OccurredAt: &override})
		require.NoError(t, err)

		assert.False(t, recorded.OccurredAt.Equal(override))
	})
}

func TestClientVisitService_Record_DistinctIDsPerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	svc := service.NewClientVisitService(newTestVisitRepository(t), ids, false)

	gomock.InOrder(
		ids.EXPECT().Generate().Return(testLocalID),
		ids.EXPECT().Generate().Return(testLocalID2),
	)

	first, err := svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2, AdultCount: 1})
	require.NoError(t, err)
	second, err := svc.Record(testContext(), service.RecordInput{QuestionnaireID: 1, SiteID: 2, AdultCount: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.LocalID, second.LocalID)

	pending, err := svc.Pending(testContext())
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
