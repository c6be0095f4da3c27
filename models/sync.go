package models

// SyncRequest is the body of POST /api/sync: the device's entire pending
// queue (or a capped prefix of it) submitted as one batch.
type SyncRequest struct {
	Records []VisitRecord `json:"records"`
	Length  int           `json:"length"`
}

// SyncResult is the per-record outcome of a reconciliation attempt. Results
// are matched to submitted records by LocalID, never by position.
type SyncResult struct {
	LocalID string `json:"local_id"`
	Success bool   `json:"success"`

	// Created is true when this submission persisted a new row and false
	// when the row already existed (idempotent no-op). Only meaningful
	// when Success is true.
	Created bool `json:"created"`

	// Error holds the rejection reason for failed records.
	Error string `json:"error,omitempty"`
}

// SyncResponse is the reconciliation endpoint's reply, one result per
// submitted record.
type SyncResponse struct {
	Results []SyncResult `json:"results"`
	Length  int          `json:"length"`
}
