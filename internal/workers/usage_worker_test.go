package workers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/models"
)

// recordingUsageService collects applied jobs for assertions.
type recordingUsageService struct {
	mu      sync.Mutex
	applied []service.UsageJob
	err     error
}

func (s *recordingUsageService) ApplyVisit(_ context.Context, questionnaireID, localityID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = append(s.applied, service.UsageJob{QuestionnaireID: questionnaireID, LocalityID: localityID})
	return s.err
}

func (s *recordingUsageService) Favorites(context.Context, int64) ([]models.FavoriteLocality, error) {
	return nil, nil
}

func (s *recordingUsageService) appliedJobs() []service.UsageJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]service.UsageJob(nil), s.applied...)
}

func TestUsageWorker_AppliesSubmittedJobs(t *testing.T) {
	usage := &recordingUsageService{}
	worker := NewUsageWorker(usage, 8, logger.Nop())

	worker.Run(context.Background())
	require.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 10}))
	require.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 20}))
	worker.Stop()

	assert.Equal(t, []service.UsageJob{
		{QuestionnaireID: 1, LocalityID: 10},
		{QuestionnaireID: 1, LocalityID: 20},
	}, usage.appliedJobs())
}

func TestUsageWorker_SubmitReportsFullQueue(t *testing.T) {
	usage := &recordingUsageService{}
	worker := NewUsageWorker(usage, 1, logger.Nop())

	// Not running: the single buffer slot fills up and the next submit
	// must be refused instead of blocking.
	assert.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 10}))
	assert.False(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 20}))

	worker.Run(context.Background())
	worker.Stop()

	assert.Equal(t, []service.UsageJob{{QuestionnaireID: 1, LocalityID: 10}}, usage.appliedJobs())
}

func TestUsageWorker_StopDrainsQueue(t *testing.T) {
	usage := &recordingUsageService{}
	worker := NewUsageWorker(usage, 16, logger.Nop())

	worker.Run(context.Background())
	for i := int64(0); i < 10; i++ {
		require.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 2, LocalityID: i}))
	}
	worker.Stop()

	assert.Len(t, usage.appliedJobs(), 10)
}

func TestUsageWorker_FailedJobDoesNotStopLoop(t *testing.T) {
	usage := &recordingUsageService{err: assert.AnError}
	worker := NewUsageWorker(usage, 4, logger.Nop())

	worker.Run(context.Background())
	require.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 1}))
	require.True(t, worker.Submit(service.UsageJob{QuestionnaireID: 1, LocalityID: 2}))
	worker.Stop()

	assert.Len(t, usage.appliedJobs(), 2)
}
