package service

import (
	"context"

	"github.com/associo/tallysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UsageJob asks the aggregate maintainer to account for one newly
// persisted visit referencing a locality.
type UsageJob struct {
	QuestionnaireID int64
	LocalityID      int64
}

// UsageJobSink accepts usage jobs for asynchronous processing. Submit
// reports false when the job could not be accepted (queue full or closed);
// the caller logs it, since a missed ranking update is tolerable while a
// blocked sync request is not.
type UsageJobSink interface {
	Submit(job UsageJob) bool
}

// SyncService is the server-side reconciliation contract: idempotent
// per-record persistence of submitted batches.
type SyncService interface {
	// Reconcile processes every record of the batch independently and
	// returns one result per record, matched by local_id. A failing
	// record never affects its siblings.
	Reconcile(ctx context.Context, session models.DeviceSession, req models.SyncRequest) (models.SyncResponse, error)
}

// UsageService maintains the derived locality-usage aggregate.
type UsageService interface {
	// ApplyVisit increments use_count for the pair and recomputes the
	// usage percentages of the whole questionnaire.
	ApplyVisit(ctx context.Context, questionnaireID, localityID int64) error
	// Favorites returns the current favorite-locality ranking.
	Favorites(ctx context.Context, questionnaireID int64) ([]models.FavoriteLocality, error)
}

// TokenService resolves opaque bearer credentials into device sessions.
type TokenService interface {
	ParseCredential(tokenString string) (models.DeviceSession, error)
}

// ConfigService assembles the per-device campaign configuration payload.
type ConfigService interface {
	BuildCampaignConfig(ctx context.Context, session models.DeviceSession) (models.CampaignConfig, error)
}

// LocalityService serves the locality reference table.
type LocalityService interface {
	AllLocalities(ctx context.Context) ([]models.Locality, error)
	Search(ctx context.Context, query string, limit int) ([]models.Locality, error)
}
