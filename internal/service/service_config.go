package service

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

type configService struct {
	campaigns store.CampaignRepository
	usage     UsageService
}

// NewConfigService creates the campaign configuration assembler.
func NewConfigService(campaigns store.CampaignRepository, usage UsageService) ConfigService {
	return &configService{campaigns: campaigns, usage: usage}
}

// BuildCampaignConfig assembles the session-start payload for the device:
// its questionnaire, the sites its credential covers, and the current
// favorite-locality ranking.
func (s *configService) BuildCampaignConfig(ctx context.Context, session models.DeviceSession) (models.CampaignConfig, error) {
	questionnaire, err := s.campaigns.GetQuestionnaire(ctx, session.QuestionnaireID)
	if err != nil {
		return models.CampaignConfig{}, fmt.Errorf("error loading questionnaire: %w", err)
	}

	sites, err := s.campaigns.GetSites(ctx, session.QuestionnaireID)
	if err != nil {
		return models.CampaignConfig{}, fmt.Errorf("error loading sites: %w", err)
	}

	// A scoped credential only gets to see its own sites.
	if len(session.SiteIDs) > 0 {
		scoped := make([]models.Site, 0, len(session.SiteIDs))
		for _, site := range sites {
			if session.AllowsSite(site.ID) {
				scoped = append(scoped, site)
			}
		}
		sites = scoped
	}

	favorites, err := s.usage.Favorites(ctx, session.QuestionnaireID)
	if err != nil {
		return models.CampaignConfig{}, err
	}

	return models.CampaignConfig{
		Questionnaire: questionnaire,
		Sites:         sites,
		Favorites:     favorites,
	}, nil
}
