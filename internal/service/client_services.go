package service

import (
	"github.com/associo/tallysync/internal/adapter"
	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/internal/utils"
)

// ClientServices groups the device-side services for agent wiring.
type ClientServices struct {
	Visit    ClientVisitService
	Sync     ClientSyncService
	SyncJob  ClientSyncJob
	RefCache RefCacheService
}

// NewClientServices wires the device service layer on top of the local
// storages and the server adapter.
func NewClientServices(cfg *config.DeviceConfig, storages *store.ClientStorages, server adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	engine := NewClientSyncService(server, storages.VisitRepository, cfg.Sync.BatchCap, cfg.HistoryLimit, log.Logger)

	return &ClientServices{
		Visit:    NewClientVisitService(storages.VisitRepository, utils.NewUUIDGenerator(), cfg.OperatorMode),
		Sync:     engine,
		SyncJob:  NewClientSyncJob(engine, server, cfg.Sync.Interval, log.Logger),
		RefCache: NewRefCacheService(server, storages.LocalityCache, cfg.CacheMaxAge, log.Logger),
	}
}
