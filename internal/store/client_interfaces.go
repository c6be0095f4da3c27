package store

import (
	"context"
	"time"

	"github.com/associo/tallysync/models"
)

// Logical namespaces of the device local store. Each namespace is an
// isolated key space inside the same SQLite file.
const (
	// NamespaceConfig holds device settings and cache bookkeeping
	// (e.g. the locality refresh timestamp).
	NamespaceConfig = "config"
	// NamespaceLocalities holds the replicated locality reference table.
	NamespaceLocalities = "localities"
	// NamespaceQueue holds pending visit records awaiting upload.
	NamespaceQueue = "queue"
	// NamespaceHistory holds the bounded log of synced records.
	NamespaceHistory = "history"
	// NamespaceQuarantine holds permanently rejected records and their
	// rejection reasons.
	NamespaceQuarantine = "quarantine"
)

// KVEntry is one namespaced key/value pair of the device local store.
type KVEntry struct {
	Key   string
	Value []byte
}

// LocalStore is the durable key/value contract the device builds on. Every
// operation survives process restarts; writes are atomic per key.
type LocalStore interface {
	Put(ctx context.Context, namespace, key string, value []byte) error
	// Get returns [ErrKeyNotFound] when the pair is absent.
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	// GetAll returns every entry of the namespace ordered by key.
	GetAll(ctx context.Context, namespace string) ([]KVEntry, error)
	Delete(ctx context.Context, namespace, key string) error
	// Replace atomically swaps the whole namespace for the given entries
	// in one transaction. Used for reference cache refreshes.
	Replace(ctx context.Context, namespace string, entries []KVEntry) error
	Close() error
}

// LocalVisitRepository manages the pending queue, history log, and
// quarantine on top of [LocalStore].
type LocalVisitRepository interface {
	// Enqueue appends a record to the pending queue. Enqueue only ever
	// adds entries; removal belongs to the sync engine via Ack and
	// Quarantine, so the two writers never contend on the same key.
	Enqueue(ctx context.Context, visit models.VisitRecord) error
	// Pending returns queued records in enqueue order, up to limit
	// (zero means all).
	Pending(ctx context.Context, limit int) ([]models.VisitRecord, error)
	// Ack removes the record from the queue and appends it to the
	// history log with sync_state=synced, evicting the oldest history
	// entries beyond historyLimit.
	Ack(ctx context.Context, localID string, historyLimit int) error
	// Quarantine moves a permanently rejected record out of the retry
	// path, keeping the record and the reason.
	Quarantine(ctx context.Context, localID, reason string) error
	History(ctx context.Context) ([]models.VisitRecord, error)
	Quarantined(ctx context.Context) ([]models.QuarantinedVisit, error)
}

// LocalityCacheRepository stores the device's replica of the locality
// reference table.
type LocalityCacheRepository interface {
	ReplaceLocalities(ctx context.Context, localities []models.Locality) error
	Localities(ctx context.Context) ([]models.Locality, error)
	// LastRefreshedAt returns the zero time when the cache was never
	// refreshed.
	LastRefreshedAt(ctx context.Context) (time.Time, error)
	SetLastRefreshedAt(ctx context.Context, t time.Time) error
}
