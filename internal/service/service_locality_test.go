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

func TestLocalityService_Search_EmptyQueryReturnsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	localities := mock.NewMockLocalityRepository(ctrl)
	svc := service.NewLocalityService(localities)

	// The repository must not be queried at all.
	found, err := svc.Search(testContext(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLocalityService_Search_AppliesDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	localities := mock.NewMockLocalityRepository(ctrl)
	svc := service.NewLocalityService(localities)

	want := []models.Locality{{ID: 10, Name: "Ashford", PostalCode: "12043"}}
	localities.EXPECT().SearchLocalities(gomock.Any(), "ash", 20).Return(want, nil)

	found, err := svc.Search(testContext(), "ash", 0)
	require.NoError(t, err)
	assert.Equal(t, want, found)
}

func TestLocalityService_AllLocalities(t *testing.T) {
	ctrl := gomock.NewController(t)
	localities := mock.NewMockLocalityRepository(ctrl)
	svc := service.NewLocalityService(localities)

	want := []models.Locality{
		{ID: 10, Name: "Ashford", PostalCode: "12043"},
		{ID: 11, Name: "Birchwood", PostalCode: "12055"},
	}
	localities.EXPECT().GetAllLocalities(gomock.Any()).Return(want, nil)

	all, err := svc.AllLocalities(testContext())
	require.NoError(t, err)
	assert.Equal(t, want, all)
}
