package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

// campaignRepository reads questionnaire and site configuration rows.
type campaignRepository struct {
	*DB
	logger *logger.Logger
}

// NewCampaignRepository constructs a [CampaignRepository] backed by the
// provided database connection and logger.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	return &campaignRepository{
		DB:     db,
		logger: logger,
	}
}

// GetQuestionnaire returns one questionnaire by id, or
// [ErrQuestionnaireNotFound] when it does not exist.
func (c *campaignRepository) GetQuestionnaire(ctx context.Context, id int64) (models.Questionnaire, error) {
	log := logger.FromContext(ctx)

	var q models.Questionnaire
	err := c.DB.QueryRowContext(ctx, getQuestionnaire, id).Scan(&q.ID, &q.Name, &q.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Questionnaire{}, ErrQuestionnaireNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.GetQuestionnaire").
			Int64("questionnaire_id", id).
			Msg("failed to execute questionnaire query")
		return models.Questionnaire{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return q, nil
}

// GetSites returns the counting sites of a questionnaire ordered by id.
func (c *campaignRepository) GetSites(ctx context.Context, questionnaireID int64) ([]models.Site, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getSites, questionnaireID)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.GetSites").
			Int64("questionnaire_id", questionnaireID).
			Msg("failed to execute sites query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sites := make([]models.Site, 0, 5)

	for rows.Next() {
		var site models.Site
		if scanErr := rows.Scan(&site.ID, &site.QuestionnaireID, &site.Name); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sites, nil
}
