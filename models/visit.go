package models

import "time"

// SyncState describes where a visit record currently lives in its lifecycle:
// still on the device awaiting upload, or acknowledged by the server.
type SyncState string

const (
	// SyncStateLocal marks a record that exists only in the device's
	// pending queue and has not been acknowledged by the server.
	SyncStateLocal SyncState = "local"

	// SyncStateSynced marks a record the server has acknowledged. Synced
	// records live in the device history log for UI feedback only.
	SyncStateSynced SyncState = "synced"
)

// VisitRecord is a single visitor-count entry captured on a field device.
//
// LocalID is generated on the device at creation time (UUIDv4) and is the
// idempotency key for server persistence: exactly one server row may ever
// exist per LocalID, no matter how many times the record is submitted.
// LocalID is never reused or mutated after creation.
type VisitRecord struct {
	// LocalID is the client-generated UUIDv4 idempotency key.
	LocalID string `json:"local_id"`

	// QuestionnaireID identifies the counting campaign this record
	// belongs to.
	QuestionnaireID int64 `json:"questionnaire_id"`

	// SiteID identifies the location within the campaign.
	SiteID int64 `json:"site_id"`

	// LocalityID optionally references a locality from the reference
	// table (visitor origin). Nil when the operator did not record one.
	LocalityID *int64 `json:"locality_id,omitempty"`

	// AdultCount and ChildCount are non-negative; at least one of them
	// must be positive for the record to be created at all.
	AdultCount int `json:"adult_count"`
	ChildCount int `json:"child_count"`

	// OccurredAt is the visit timestamp. Normally the device clock at
	// creation time, but operator mode may override it explicitly.
	OccurredAt time.Time `json:"occurred_at"`

	// EnqueuedAt is the device wall-clock time the record entered the
	// pending queue. Never overridden, kept distinct from OccurredAt so
	// the enqueue moment stays auditable.
	EnqueuedAt time.Time `json:"enqueued_at"`

	SyncState SyncState `json:"sync_state"`
}

// TotalCount returns the combined number of counted visitors.
func (v VisitRecord) TotalCount() int {
	return v.AdultCount + v.ChildCount
}

// QuarantinedVisit wraps a visit record the server permanently rejected.
// Quarantined records are removed from the retry path but never silently
// dropped: the record and the rejection reason stay on the device.
type QuarantinedVisit struct {
	Record        VisitRecord `json:"record"`
	Reason        string      `json:"reason"`
	QuarantinedAt time.Time   `json:"quarantined_at"`
}
