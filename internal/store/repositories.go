package store

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/migrations"
)

// Repositories groups all server-side repositories into a single value that
// can be passed around the service layer.
type Repositories struct {
	VisitRepository    VisitRepository
	LocalityRepository LocalityRepository
	UsageRepository    UsageRepository
	CampaignRepository CampaignRepository
}

// NewRepositories connects to PostgreSQL, applies pending migrations, and
// wires every repository to the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		VisitRepository:    NewVisitRepository(db, log),
		LocalityRepository: NewLocalityRepository(db, log),
		UsageRepository:    NewUsageRepository(db, log),
		CampaignRepository: NewCampaignRepository(db, log),
	}, nil
}
