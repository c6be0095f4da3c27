package service

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

// favoritesThreshold is the minimum usage percentage for a locality to be
// ranked as a favorite without being pinned.
const favoritesThreshold = 5.0

type usageService struct {
	usage store.UsageRepository
}

// NewUsageService creates the locality-usage aggregate maintainer.
func NewUsageService(usage store.UsageRepository) UsageService {
	return &usageService{usage: usage}
}

// ApplyVisit accounts one persisted visit in the aggregate: increment the
// pair's use_count, then recompute usage percentages across the whole
// questionnaire so every row reflects the new total.
func (s *usageService) ApplyVisit(ctx context.Context, questionnaireID, localityID int64) error {
	if err := s.usage.IncrementUsage(ctx, questionnaireID, localityID); err != nil {
		return fmt.Errorf("error incrementing locality usage: %w", err)
	}
	if err := s.usage.RecomputePercentages(ctx, questionnaireID); err != nil {
		return fmt.Errorf("error recomputing usage percentages: %w", err)
	}
	return nil
}

// Favorites returns the questionnaire's current favorite-locality ranking:
// pinned localities plus every locality at or above the usage threshold.
func (s *usageService) Favorites(ctx context.Context, questionnaireID int64) ([]models.FavoriteLocality, error) {
	favorites, err := s.usage.GetFavorites(ctx, questionnaireID, favoritesThreshold)
	if err != nil {
		return nil, fmt.Errorf("error loading favorite localities: %w", err)
	}
	return favorites, nil
}
