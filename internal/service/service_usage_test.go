package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/associo/tallysync/internal/mock"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/models"
)

func TestUsageService_ApplyVisit_IncrementsThenRecomputes(t *testing.T) {
	ctrl := gomock.NewController(t)
	usage := mock.NewMockUsageRepository(ctrl)
	svc := service.NewUsageService(usage)

	gomock.InOrder(
		usage.EXPECT().IncrementUsage(gomock.Any(), int64(1), int64(10)).Return(nil),
		usage.EXPECT().RecomputePercentages(gomock.Any(), int64(1)).Return(nil),
	)

	require.NoError(t, svc.ApplyVisit(testContext(), 1, 10))
}

func TestUsageService_ApplyVisit_IncrementErrorSkipsRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	usage := mock.NewMockUsageRepository(ctrl)
	svc := service.NewUsageService(usage)

	usage.EXPECT().IncrementUsage(gomock.Any(), int64(1), int64(10)).Return(assert.AnError)

	err := svc.ApplyVisit(testContext(), 1, 10)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUsageService_Favorites_UsesThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	usage := mock.NewMockUsageRepository(ctrl)
	svc := service.NewUsageService(usage)

	want := []models.FavoriteLocality{
		{Locality: models.Locality{ID: 10, Name: "Ashford"}, UsagePercentage: 42.5, Pinned: true},
	}
	usage.EXPECT().GetFavorites(gomock.Any(), int64(1), 5.0).Return(want, nil)

	favorites, err := svc.Favorites(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, favorites)
}
