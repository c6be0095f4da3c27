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

func TestConfigService_BuildCampaignConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mock.NewMockCampaignRepository(ctrl)
	usage := mock.NewMockUsageService(ctrl)
	svc := service.NewConfigService(campaigns, usage)

	questionnaire := models.Questionnaire{ID: 1, Name: "Spring census", Active: true}
	sites := []models.Site{
		{ID: 2, QuestionnaireID: 1, Name: "North gate"},
		{ID: 3, QuestionnaireID: 1, Name: "South gate"},
	}
	favorites := []models.FavoriteLocality{
		{Locality: models.Locality{ID: 10, Name: "Ashford"}, UsagePercentage: 12.5},
	}

	campaigns.EXPECT().GetQuestionnaire(gomock.Any(), int64(1)).Return(questionnaire, nil)
	campaigns.EXPECT().GetSites(gomock.Any(), int64(1)).Return(sites, nil)
	usage.EXPECT().Favorites(gomock.Any(), int64(1)).Return(favorites, nil)

	cfg, err := svc.BuildCampaignConfig(testContext(), models.DeviceSession{DeviceID: "d", QuestionnaireID: 1})
	require.NoError(t, err)

	assert.Equal(t, questionnaire, cfg.Questionnaire)
	assert.Equal(t, sites, cfg.Sites)
	assert.Equal(t, favorites, cfg.Favorites)
}

func TestConfigService_BuildCampaignConfig_ScopedCredentialFiltersSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mock.NewMockCampaignRepository(ctrl)
	usage := mock.NewMockUsageService(ctrl)
	svc := service.NewConfigService(campaigns, usage)

	campaigns.EXPECT().GetQuestionnaire(gomock.Any(), int64(1)).Return(models.Questionnaire{ID: 1, Active: true}, nil)
	campaigns.EXPECT().GetSites(gomock.Any(), int64(1)).Return([]models.Site{
		{ID: 2, QuestionnaireID: 1, Name: "North gate"},
		{ID: 3, QuestionnaireID: 1, Name: "South gate"},
	}, nil)
	usage.EXPECT().Favorites(gomock.Any(), int64(1)).Return(nil, nil)

	cfg, err := svc.BuildCampaignConfig(testContext(), models.DeviceSession{DeviceID: "d", QuestionnaireID: 1, SiteIDs: []int64{3}})
	require.NoError(t, err)

	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, int64(3), cfg.Sites[0].ID)
}

func TestConfigService_BuildCampaignConfig_QuestionnaireError(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mock.NewMockCampaignRepository(ctrl)
	usage := mock.NewMockUsageService(ctrl)
	svc := service.NewConfigService(campaigns, usage)

	campaigns.EXPECT().GetQuestionnaire(gomock.Any(), int64(1)).Return(models.Questionnaire{}, assert.AnError)

	_, err := svc.BuildCampaignConfig(testContext(), models.DeviceSession{DeviceID: "d", QuestionnaireID: 1})
	assert.ErrorIs(t, err, assert.AnError)
}
