package store

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/logger"
)

// ClientStorages groups the device-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Store is the raw namespaced key/value store. Exposed so the agent
	// can close it on shutdown.
	Store LocalStore

	// VisitRepository manages the pending queue, history, and quarantine.
	VisitRepository LocalVisitRepository

	// LocalityCache holds the replicated locality reference table.
	LocalityCache LocalityCacheRepository
}

// NewClientStorages initialises the device storage layer: opens (or
// creates) the SQLite file at the configured path and wires the
// repositories on top of it.
//
// An unopenable local store is a hard failure — the agent must refuse to
// start rather than risk losing visit counts.
func NewClientStorages(ctx context.Context, cfg config.DeviceStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	kv, err := NewLocalStore(ctx, cfg.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("local store error: %w", err)
	}

	return &ClientStorages{
		Store:           kv,
		VisitRepository: NewLocalVisitRepository(kv, logger),
		LocalityCache:   NewLocalityCacheRepository(kv, logger),
	}, nil
}
