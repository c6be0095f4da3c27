package service

import (
	"context"
	"time"

	"github.com/associo/tallysync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IDGenerator produces client-generated visit identifiers.
type IDGenerator interface {
	Generate() string
}

// RecordInput is the operator's input for one counted visit.
type RecordInput struct {
	QuestionnaireID int64
	SiteID          int64
	LocalityID      *int64
	AdultCount      int
	ChildCount      int

	// OccurredAt optionally overrides the visit timestamp. Honored only
	// in operator mode; nil means "now".
	OccurredAt *time.Time
}

// ClientVisitService captures visits on the device and exposes the local
// record inventories.
type ClientVisitService interface {
	// Record validates the input, assigns a fresh local_id, and appends
	// the record to the durable pending queue. The record is safe
	// against power loss as soon as Record returns.
	Record(ctx context.Context, input RecordInput) (models.VisitRecord, error)
	Pending(ctx context.Context) ([]models.VisitRecord, error)
	History(ctx context.Context) ([]models.VisitRecord, error)
	Quarantined(ctx context.Context) ([]models.QuarantinedVisit, error)
}

// SyncStats summarises one sync attempt.
type SyncStats struct {
	Submitted   int
	Acked       int
	Created     int
	Quarantined int
	// Remaining counts records left in the queue after the attempt,
	// either because the batch cap cut them off or because their result
	// was retryable.
	Remaining int
}

// ClientSyncService drains the pending queue towards the server.
type ClientSyncService interface {
	// SyncOnce performs a single sync attempt. It returns
	// [ErrSyncInProgress] when another attempt is already in flight and
	// [ErrOffline] when the server is unreachable; both leave the queue
	// untouched.
	SyncOnce(ctx context.Context) (SyncStats, error)
	IsSyncing() bool
}

// ClientSyncJob owns the background sync loop: the periodic ticker, the
// connectivity watcher, and the manual trigger funnel.
type ClientSyncJob interface {
	Start(ctx context.Context)
	Stop()
	// TriggerSync requests a sync attempt without blocking. Triggers
	// arriving while an attempt is in flight coalesce into at most one
	// follow-up attempt.
	TriggerSync()
}

// RefCacheService maintains the device replica of the locality reference
// table and answers locality lookups from it.
type RefCacheService interface {
	// RefreshIfStale re-downloads the reference table when the local
	// copy is older than the configured max age. Network failures are
	// tolerated: the stale copy stays in place.
	RefreshIfStale(ctx context.Context) error
	Localities(ctx context.Context) ([]models.Locality, error)
	// Search merges local-cache matches with live server results when
	// the device is online. Local matches are always returned, even when
	// the server is unreachable.
	Search(ctx context.Context, query string, limit int) ([]models.Locality, error)
}
