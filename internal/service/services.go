// Package service contains the business logic of the reconciliation
// server and the field-device agent: idempotent batch reconciliation,
// locality-usage aggregation, campaign configuration, and the device-side
// record/sync/cache services.
package service

import (
	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/metrics"
	"github.com/associo/tallysync/internal/store"
)

// Services groups the server-side services for handler wiring.
type Services struct {
	Sync     SyncService
	Usage    UsageService
	Config   ConfigService
	Locality LocalityService
	Token    TokenService
}

// NewServices wires every server-side service to the shared repositories.
func NewServices(app config.App, repos *store.Repositories, usageJobs UsageJobSink, m *metrics.Metrics) *Services {
	usage := NewUsageService(repos.UsageRepository)

	return &Services{
		Sync:     NewSyncService(repos.VisitRepository, repos.LocalityRepository, repos.CampaignRepository, usageJobs, m),
		Usage:    usage,
		Config:   NewConfigService(repos.CampaignRepository, usage),
		Locality: NewLocalityService(repos.LocalityRepository),
		Token:    NewTokenService(app.TokenSignKey, app.TokenIssuer),
	}
}
