// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/associo/tallysync/internal/adapter"
	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

// refCacheService keeps the device's locality replica fresh and answers
// lookups from it, augmented with live server results while online.
type refCacheService struct {
	server adapter.ServerAdapter
	cache  store.LocalityCacheRepository
	maxAge time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewRefCacheService creates the locality reference cache service.
func NewRefCacheService(server adapter.ServerAdapter, cache store.LocalityCacheRepository, maxAge time.Duration, log zerolog.Logger) RefCacheService {
	return &refCacheService{
		server: server,
		cache:  cache,
		maxAge: maxAge,
		log:    log,
		now:    time.Now,
	}
}

// RefreshIfStale re-downloads the reference table when the replica is
// older than maxAge. A download failure keeps the stale replica: an old
// locality list beats no locality list.
func (s *refCacheService) RefreshIfStale(ctx context.Context) error {
	refreshedAt, err := s.cache.LastRefreshedAt(ctx)
	if err != nil {
		return fmt.Errorf("error reading cache age: %w", err)
	}
	if !refreshedAt.IsZero() && s.now().Sub(refreshedAt) < s.maxAge {
		return nil
	}

	localities, err := s.server.FetchLocalities(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("locality refresh failed, keeping cached copy")
		return nil
	}

	if err := s.cache.ReplaceLocalities(ctx, localities); err != nil {
		return fmt.Errorf("error replacing locality cache: %w", err)
	}

	s.log.Info().Int("localities", len(localities)).Msg("locality cache refreshed")
	return nil
}

func (s *refCacheService) Localities(ctx context.Context) ([]models.Locality, error) {
	return s.cache.Localities(ctx)
}

// Search merges local-replica matches with a live server search. The two
// lookups run concurrently; a failed or unreachable server search is
// dropped and the local matches are returned alone.
func (s *refCacheService) Search(ctx context.Context, query string, limit int) ([]models.Locality, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Locality{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var local, remote []models.Locality

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		cached, err := s.cache.Localities(groupCtx)
		if err != nil {
			return fmt.Errorf("error reading locality cache: %w", err)
		}
		local = filterLocalities(cached, query, limit)
		return nil
	})
	group.Go(func() error {
		found, err := s.server.SearchLocalities(groupCtx, query, limit)
		if err != nil {
			s.log.Debug().Err(err).Msg("remote locality search unavailable")
			return nil
		}
		remote = found
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return mergeLocalities(local, remote, limit), nil
}

// filterLocalities applies the server's matching rules to the replica:
// case-insensitive name substring or postal-code prefix.
func filterLocalities(localities []models.Locality, query string, limit int) []models.Locality {
	lowered := strings.ToLower(query)

	matches := make([]models.Locality, 0, limit)
	for _, locality := range localities {
		if strings.Contains(strings.ToLower(locality.Name), lowered) ||
			strings.HasPrefix(locality.PostalCode, query) {
			matches = append(matches, locality)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// mergeLocalities unions the two result sets by locality ID, local first,
// sorted by name for a stable display order.
func mergeLocalities(local, remote []models.Locality, limit int) []models.Locality {
	seen := make(map[int64]struct{}, len(local)+len(remote))
	merged := make([]models.Locality, 0, len(local)+len(remote))

	for _, locality := range append(local, remote...) {
		if _, ok := seen[locality.ID]; ok {
			continue
		}
		seen[locality.ID] = struct{}{}
		merged = append(merged, locality)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
