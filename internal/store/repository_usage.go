package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

// usageRepository is the PostgreSQL-backed implementation of
// [UsageRepository] over the "locality_usage" aggregate table.
type usageRepository struct {
	*DB
	logger *logger.Logger
}

// NewUsageRepository constructs a [UsageRepository] backed by the provided
// database connection and logger.
func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	return &usageRepository{
		DB:     db,
		logger: logger,
	}
}

// IncrementUsage bumps use_count for the (questionnaire, locality) pair.
// The row is created on first use via the upsert, so the counter update is
// atomic under concurrent batches.
func (u *usageRepository) IncrementUsage(ctx context.Context, questionnaireID, localityID int64) error {
	log := logger.FromContext(ctx)

	if _, err := u.DB.ExecContext(ctx, incrementUsage, questionnaireID, localityID); err != nil {
		log.Err(err).
			Str("func", "usageRepository.IncrementUsage").
			Int64("questionnaire_id", questionnaireID).
			Int64("locality_id", localityID).
			Str("pg_code", postgresError(err)).
			Msg("failed to increment locality usage")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RecomputePercentages rewrites usage_percentage for every locality of the
// questionnaire from scratch: use_count / sum(use_count) * 100, rounded to
// two decimals. A full recomputation avoids compounding rounding error and
// is cheap because questionnaires reference tens of localities, not
// thousands.
func (u *usageRepository) RecomputePercentages(ctx context.Context, questionnaireID int64) error {
	log := logger.FromContext(ctx)

	if _, err := u.DB.ExecContext(ctx, recomputePercentages, questionnaireID); err != nil {
		log.Err(err).
			Str("func", "usageRepository.RecomputePercentages").
			Int64("questionnaire_id", questionnaireID).
			Str("pg_code", postgresError(err)).
			Msg("failed to recompute usage percentages")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetFavorites returns the favorite-locality ranking for a questionnaire:
// every pinned locality plus every locality whose share of references is at
// or above threshold, ordered pinned-first, then by the manual display
// order, then by usage descending.
func (u *usageRepository) GetFavorites(ctx context.Context, questionnaireID int64, threshold float64) ([]models.FavoriteLocality, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(
		"l.id", "l.name", "l.postal_code",
		"u.use_count", "u.usage_percentage", "u.pinned", "u.display_order",
	).
		From("locality_usage u").
		Join("localities l ON l.id = u.locality_id").
		Where(sq.Eq{"u.questionnaire_id": questionnaireID}).
		Where(sq.Or{
			sq.Eq{"u.pinned": true},
			sq.GtOrEq{"u.usage_percentage": threshold},
		}).
		OrderBy("u.pinned DESC", "u.display_order", "u.usage_percentage DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.GetFavorites").
			Int64("questionnaire_id", questionnaireID).
			Msg("failed to build favorites query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := u.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.GetFavorites").
			Int64("questionnaire_id", questionnaireID).
			Msg("failed to execute favorites query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.FavoriteLocality, 0, 10)

	for rows.Next() {
		var fav models.FavoriteLocality
		scanErr := rows.Scan(
			&fav.ID,
			&fav.Name,
			&fav.PostalCode,
			&fav.UseCount,
			&fav.UsagePercentage,
			&fav.Pinned,
			&fav.DisplayOrder,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "usageRepository.GetFavorites").
				Int64("questionnaire_id", questionnaireID).
				Msg("failed to scan favorite locality row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "usageRepository.GetFavorites").
			Int64("questionnaire_id", questionnaireID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// GetUsage returns every usage row of a questionnaire.
func (u *usageRepository) GetUsage(ctx context.Context, questionnaireID int64) ([]models.LocalityUsage, error) {
	log := logger.FromContext(ctx)

	rows, err := u.DB.QueryContext(ctx, getUsage, questionnaireID)
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.GetUsage").
			Int64("questionnaire_id", questionnaireID).
			Msg("failed to execute usage query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	usage := make([]models.LocalityUsage, 0, 10)

	for rows.Next() {
		var row models.LocalityUsage
		scanErr := rows.Scan(
			&row.QuestionnaireID,
			&row.LocalityID,
			&row.UseCount,
			&row.UsagePercentage,
			&row.Pinned,
			&row.DisplayOrder,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		usage = append(usage, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return usage, nil
}
