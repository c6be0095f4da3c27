package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

// localVisitRepository implements [LocalVisitRepository] on top of the
// namespaced [LocalStore].
//
// Queue and history keys are "<nanos>:<local_id>" with the enqueue (or ack)
// timestamp zero-padded to 20 digits, so the store's key ordering is the
// chronological ordering and GetAll drains oldest-first.
type localVisitRepository struct {
	store  LocalStore
	logger *logger.Logger
}

// NewLocalVisitRepository constructs a [LocalVisitRepository] over the
// given local store.
func NewLocalVisitRepository(store LocalStore, logger *logger.Logger) LocalVisitRepository {
	return &localVisitRepository{
		store:  store,
		logger: logger,
	}
}

func orderedKey(at time.Time, localID string) string {
	return fmt.Sprintf("%020d:%s", at.UnixNano(), localID)
}

func keyLocalID(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// Enqueue appends one record to the pending queue. A failed write is
// reported to the caller immediately: a visit that cannot be persisted
// locally must never look recorded.
func (r *localVisitRepository) Enqueue(ctx context.Context, visit models.VisitRecord) error {
	visit.SyncState = models.SyncStateLocal

	payload, err := json.Marshal(visit)
	if err != nil {
		return fmt.Errorf("encode queued visit %s: %w", visit.LocalID, err)
	}

	if err := r.store.Put(ctx, NamespaceQueue, orderedKey(visit.EnqueuedAt, visit.LocalID), payload); err != nil {
		return fmt.Errorf("enqueue visit %s: %w", visit.LocalID, err)
	}

	return nil
}

// Pending returns queued records oldest-first, up to limit (zero = all).
func (r *localVisitRepository) Pending(ctx context.Context, limit int) ([]models.VisitRecord, error) {
	entries, err := r.store.GetAll(ctx, NamespaceQueue)
	if err != nil {
		return nil, fmt.Errorf("read pending queue: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	records := make([]models.VisitRecord, 0, len(entries))
	for _, e := range entries {
		var visit models.VisitRecord
		if err := json.Unmarshal(e.Value, &visit); err != nil {
			return nil, fmt.Errorf("decode queued visit %s: %w", e.Key, err)
		}
		records = append(records, visit)
	}

	return records, nil
}

// Ack removes the acknowledged record from the queue and appends it to the
// history log with sync_state=synced. History is bounded: entries beyond
// historyLimit are evicted oldest-first. A record absent from the queue is
// a no-op, which makes duplicate acknowledgements harmless.
func (r *localVisitRepository) Ack(ctx context.Context, localID string, historyLimit int) error {
	key, visit, err := r.findQueued(ctx, localID)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}

	visit.SyncState = models.SyncStateSynced
	payload, err := json.Marshal(visit)
	if err != nil {
		return fmt.Errorf("encode history entry %s: %w", localID, err)
	}

	if err := r.store.Put(ctx, NamespaceHistory, orderedKey(time.Now(), localID), payload); err != nil {
		return fmt.Errorf("append history entry %s: %w", localID, err)
	}

	if err := r.store.Delete(ctx, NamespaceQueue, key); err != nil {
		return fmt.Errorf("remove acked visit %s: %w", localID, err)
	}

	return r.evictHistory(ctx, historyLimit)
}

// Quarantine moves a permanently rejected record out of the retry path.
// The record and the rejection reason stay on the device for operator
// review; nothing is silently dropped.
func (r *localVisitRepository) Quarantine(ctx context.Context, localID, reason string) error {
	key, visit, err := r.findQueued(ctx, localID)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}

	quarantined := models.QuarantinedVisit{
		Record:        visit,
		Reason:        reason,
		QuarantinedAt: time.Now(),
	}
	payload, err := json.Marshal(quarantined)
	if err != nil {
		return fmt.Errorf("encode quarantined visit %s: %w", localID, err)
	}

	if err := r.store.Put(ctx, NamespaceQuarantine, orderedKey(quarantined.QuarantinedAt, localID), payload); err != nil {
		return fmt.Errorf("quarantine visit %s: %w", localID, err)
	}

	if err := r.store.Delete(ctx, NamespaceQueue, key); err != nil {
		return fmt.Errorf("remove quarantined visit %s: %w", localID, err)
	}

	r.logger.Warn().
		Str("local_id", localID).
		Str("reason", reason).
		Msg("visit record quarantined")

	return nil
}

// History returns synced records, oldest first.
func (r *localVisitRepository) History(ctx context.Context) ([]models.VisitRecord, error) {
	entries, err := r.store.GetAll(ctx, NamespaceHistory)
	if err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}

	records := make([]models.VisitRecord, 0, len(entries))
	for _, e := range entries {
		var visit models.VisitRecord
		if err := json.Unmarshal(e.Value, &visit); err != nil {
			return nil, fmt.Errorf("decode history entry %s: %w", e.Key, err)
		}
		records = append(records, visit)
	}

	return records, nil
}

// Quarantined returns every quarantined record with its rejection reason.
func (r *localVisitRepository) Quarantined(ctx context.Context) ([]models.QuarantinedVisit, error) {
	entries, err := r.store.GetAll(ctx, NamespaceQuarantine)
	if err != nil {
		return nil, fmt.Errorf("read quarantine log: %w", err)
	}

	records := make([]models.QuarantinedVisit, 0, len(entries))
	for _, e := range entries {
		var q models.QuarantinedVisit
		if err := json.Unmarshal(e.Value, &q); err != nil {
			return nil, fmt.Errorf("decode quarantined visit %s: %w", e.Key, err)
		}
		records = append(records, q)
	}

	return records, nil
}

func (r *localVisitRepository) findQueued(ctx context.Context, localID string) (string, models.VisitRecord, error) {
	entries, err := r.store.GetAll(ctx, NamespaceQueue)
	if err != nil {
		return "", models.VisitRecord{}, fmt.Errorf("read pending queue: %w", err)
	}

	for _, e := range entries {
		if keyLocalID(e.Key) != localID {
			continue
		}
		var visit models.VisitRecord
		if err := json.Unmarshal(e.Value, &visit); err != nil {
			return "", models.VisitRecord{}, fmt.Errorf("decode queued visit %s: %w", e.Key, err)
		}
		return e.Key, visit, nil
	}

	return "", models.VisitRecord{}, nil
}

func (r *localVisitRepository) evictHistory(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	entries, err := r.store.GetAll(ctx, NamespaceHistory)
	if err != nil {
		return fmt.Errorf("read history log: %w", err)
	}

	for len(entries) > limit {
		if err := r.store.Delete(ctx, NamespaceHistory, entries[0].Key); err != nil {
			return fmt.Errorf("evict history entry %s: %w", entries[0].Key, err)
		}
		entries = entries[1:]
	}

	return nil
}
