package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

// localityRepository is the PostgreSQL-backed implementation of
// [LocalityRepository] over the "localities" reference table.
type localityRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalityRepository constructs a [LocalityRepository] backed by the
// provided database connection and logger.
func NewLocalityRepository(db *DB, logger *logger.Logger) LocalityRepository {
	return &localityRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllLocalities returns the entire reference table ordered by name.
// Devices replicate this result into their local cache for offline
// autocomplete.
func (l *localityRepository) GetAllLocalities(ctx context.Context) ([]models.Locality, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllLocalities)
	if err != nil {
		log.Err(err).
			Str("func", "localityRepository.GetAllLocalities").
			Msg("failed to execute query for getting all localities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanLocalities(rows)
}

// SearchLocalities matches query as a case-insensitive substring of the
// locality name or as a prefix of the postal code, returning up to limit
// rows ordered by name. The filter is built with squirrel since the two
// predicates share one placeholder sequence.
func (l *localityRepository) SearchLocalities(ctx context.Context, query string, limit int) ([]models.Locality, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "name", "postal_code").
		From("localities").
		Where(sq.Or{
			sq.ILike{"name": "%" + query + "%"},
			sq.Like{"postal_code": query + "%"},
		}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "localityRepository.SearchLocalities").
			Str("query", query).
			Msg("failed to build locality search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localityRepository.SearchLocalities").
			Str("query", query).
			Msg("failed to execute locality search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanLocalities(rows)
}

// LocalityExists reports whether the given locality id is present in the
// reference table.
func (l *localityRepository) LocalityExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := l.DB.QueryRowContext(ctx, localityExists, id).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "localityRepository.LocalityExists").
			Int64("locality_id", id).
			Msg("failed to execute locality existence query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanLocalities(rows rowScanner) ([]models.Locality, error) {
	results := make([]models.Locality, 0, 50)

	for rows.Next() {
		var loc models.Locality
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.PostalCode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
