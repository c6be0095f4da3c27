package store

import (
	"context"

	"github.com/associo/tallysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// VisitRepository persists visit records with at-most-once semantics keyed
// by the client-generated local_id.
type VisitRepository interface {
	// SaveVisit performs a conditional insert: if a row with the record's
	// LocalID already exists nothing is written and created is false.
	// The insert and the uniqueness check are one atomic statement, so
	// concurrent retries of the same record cannot double-persist it.
	SaveVisit(ctx context.Context, visit models.VisitRecord) (created bool, err error)
}

// LocalityRepository reads the locality reference table.
type LocalityRepository interface {
	GetAllLocalities(ctx context.Context) ([]models.Locality, error)
	// SearchLocalities matches case-insensitive substrings of the name or
	// prefixes of the postal code, returning up to limit rows.
	SearchLocalities(ctx context.Context, query string, limit int) ([]models.Locality, error)
	LocalityExists(ctx context.Context, id int64) (bool, error)
}

// UsageRepository maintains the per-questionnaire locality usage aggregate.
type UsageRepository interface {
	// IncrementUsage bumps use_count for the pair, inserting the row on
	// first use.
	IncrementUsage(ctx context.Context, questionnaireID, localityID int64) error
	// RecomputePercentages rewrites usage_percentage for every locality
	// of the questionnaire from the current use_count totals.
	RecomputePercentages(ctx context.Context, questionnaireID int64) error
	// GetFavorites returns pinned localities and those at or above the
	// given percentage threshold, ordered pinned-first, then by display
	// order, then by usage descending.
	GetFavorites(ctx context.Context, questionnaireID int64, threshold float64) ([]models.FavoriteLocality, error)
	GetUsage(ctx context.Context, questionnaireID int64) ([]models.LocalityUsage, error)
}

// CampaignRepository reads questionnaire and site configuration.
type CampaignRepository interface {
	GetQuestionnaire(ctx context.Context, id int64) (models.Questionnaire, error)
	GetSites(ctx context.Context, questionnaireID int64) ([]models.Site, error)
}
