// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the device's transport layer for talking to the
// reconciliation server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine and reference cache from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/associo/tallysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// reconciliation server. Implementations attach the opaque device
// credential to every request and map transport-level failures to the
// sentinel values of this package.
type ServerAdapter interface {
	// SubmitBatch posts a batch of pending visit records to the
	// reconciliation endpoint and returns the per-record results.
	// The call is bounded by the configured request timeout; a timeout
	// or connection error is a total failure and the caller must leave
	// the batch queued.
	SubmitBatch(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// FetchLocalities downloads the full locality reference table for
	// the device cache.
	FetchLocalities(ctx context.Context) ([]models.Locality, error)

	// SearchLocalities runs a live server-side locality search, used to
	// augment local results while online.
	SearchLocalities(ctx context.Context, query string, limit int) ([]models.Locality, error)

	// FetchConfig retrieves the campaign metadata and current favorite
	// ranking for the device's credential.
	FetchConfig(ctx context.Context) (models.CampaignConfig, error)

	// Ping probes server reachability. It reports true when the server
	// answered, false otherwise; it never returns an error because
	// unreachability is an expected state, not a failure.
	Ping(ctx context.Context) bool
}
