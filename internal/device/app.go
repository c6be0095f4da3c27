// SPDX-License-Identifier: Apache-2.0

package device

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/adapter"
	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/internal/store"
)

// App is the field-device agent. One App owns the local store for the
// lifetime of the process.
type App struct {
	cfg      *config.DeviceConfig
	services *service.ClientServices
	storages *store.ClientStorages
	server   adapter.ServerAdapter
	logger   *logger.Logger
}

// NewApp wires the agent: opens the local store, builds the server
// adapter, and assembles the device services.
func NewApp(ctx context.Context, cfg *config.DeviceConfig, log *logger.Logger) (*App, error) {
	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &App{
		cfg:      cfg,
		services: service.NewClientServices(cfg, storages, serverAdapter, log),
		storages: storages,
		server:   serverAdapter,
		logger:   log,
	}, nil
}

// Run dispatches one agent command.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "record":
		return a.record(ctx, args)
	case "sync":
		return a.syncOnce(ctx)
	case "daemon":
		return a.daemon(ctx)
	case "config":
		return a.showConfig(ctx)
	case "localities":
		return a.searchLocalities(ctx, args)
	case "pending", "history", "quarantine":
		return a.inspect(ctx, command)
	default:
		return fmt.Errorf("unknown command %q (expected record, sync, daemon, config, localities, pending, history, or quarantine)", command)
	}
}

// Close releases the local store.
func (a *App) Close() error {
	return a.storages.Store.Close()
}

// daemon runs the agent's long-lived mode: refresh the locality replica
// if stale, then keep the background sync loop running until ctx is
// cancelled.
func (a *App) daemon(ctx context.Context) error {
	if err := a.services.RefCache.RefreshIfStale(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("locality cache refresh failed on startup")
	}

	a.services.SyncJob.Start(ctx)
	defer a.services.SyncJob.Stop()

	a.logger.Info().Msg("device agent running")
	<-ctx.Done()

	return nil
}
