package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/models"
)

const localitiesRefreshedAtKey = "localities_refreshed_at"

// localityCacheRepository implements [LocalityCacheRepository] over the
// localities namespace, with the refresh timestamp kept in the config
// namespace. Cache keys are "<id>:<name>" so GetAll returns a stable order.
type localityCacheRepository struct {
	store  LocalStore
	logger *logger.Logger
}

// NewLocalityCacheRepository constructs a [LocalityCacheRepository] over
// the given local store.
func NewLocalityCacheRepository(store LocalStore, logger *logger.Logger) LocalityCacheRepository {
	return &localityCacheRepository{
		store:  store,
		logger: logger,
	}
}

// ReplaceLocalities atomically swaps the cached reference table and stamps
// the refresh time.
func (r *localityCacheRepository) ReplaceLocalities(ctx context.Context, localities []models.Locality) error {
	entries := make([]KVEntry, 0, len(localities))
	for _, loc := range localities {
		payload, err := json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("encode locality %d: %w", loc.ID, err)
		}
		entries = append(entries, KVEntry{
			Key:   fmt.Sprintf("%d:%s", loc.ID, loc.Name),
			Value: payload,
		})
	}

	if err := r.store.Replace(ctx, NamespaceLocalities, entries); err != nil {
		return fmt.Errorf("replace locality cache: %w", err)
	}

	return r.SetLastRefreshedAt(ctx, time.Now())
}

// Localities returns the cached reference table. An empty cache returns an
// empty slice, never an error: offline search degrades, it does not fail.
func (r *localityCacheRepository) Localities(ctx context.Context) ([]models.Locality, error) {
	entries, err := r.store.GetAll(ctx, NamespaceLocalities)
	if err != nil {
		return nil, fmt.Errorf("read locality cache: %w", err)
	}

	localities := make([]models.Locality, 0, len(entries))
	for _, e := range entries {
		var loc models.Locality
		if err := json.Unmarshal(e.Value, &loc); err != nil {
			return nil, fmt.Errorf("decode cached locality %s: %w", e.Key, err)
		}
		localities = append(localities, loc)
	}

	return localities, nil
}

// LastRefreshedAt returns the zero time when the cache was never refreshed.
func (r *localityCacheRepository) LastRefreshedAt(ctx context.Context) (time.Time, error) {
	raw, err := r.store.Get(ctx, NamespaceConfig, localitiesRefreshedAtKey)
	if errors.Is(err, ErrKeyNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read cache refresh timestamp: %w", err)
	}

	var t time.Time
	if err := t.UnmarshalText(raw); err != nil {
		return time.Time{}, fmt.Errorf("decode cache refresh timestamp: %w", err)
	}
	return t, nil
}

func (r *localityCacheRepository) SetLastRefreshedAt(ctx context.Context, t time.Time) error {
	raw, err := t.MarshalText()
	if err != nil {
		return fmt.Errorf("encode cache refresh timestamp: %w", err)
	}

	if err := r.store.Put(ctx, NamespaceConfig, localitiesRefreshedAtKey, raw); err != nil {
		return fmt.Errorf("write cache refresh timestamp: %w", err)
	}
	return nil
}
