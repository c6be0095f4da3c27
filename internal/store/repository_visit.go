package store

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

// visitRepository is the PostgreSQL-backed implementation of
// [VisitRepository]. It writes to the "visits" table through the embedded
// [*DB] connection.
//
// Public methods obtain a context-scoped logger via [logger.FromContext] so
// every database interaction is traced with structured fields (local_id,
// questionnaire_id, ...).
type visitRepository struct {
	*DB
	logger *logger.Logger
}

// NewVisitRepository constructs a [VisitRepository] backed by the provided
// database connection and logger.
func NewVisitRepository(db *DB, logger *logger.Logger) VisitRepository {
	return &visitRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveVisit persists one visit record with at-most-once semantics.
//
// The INSERT carries ON CONFLICT (local_id) DO NOTHING, so the uniqueness
// check and the write are a single atomic statement: a duplicate submission
// of the same local_id affects zero rows and is reported as created=false
// with no error. Only a genuinely new row returns created=true.
func (v *visitRepository) SaveVisit(ctx context.Context, visit models.VisitRecord) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := v.DB.ExecContext(ctx, saveVisit,
		visit.LocalID,
		visit.QuestionnaireID,
		visit.SiteID,
		visit.LocalityID,
		visit.AdultCount,
		visit.ChildCount,
		visit.OccurredAt,
		visit.EnqueuedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "visitRepository.SaveVisit").
			Str("local_id", visit.LocalID).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute idempotent visit insert")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "visitRepository.SaveVisit").
			Str("local_id", visit.LocalID).
			Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected == 1, nil
}
