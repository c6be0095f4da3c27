package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/models"
)

// defaultSearchLimit caps locality search responses when the caller did
// not ask for a specific limit.
const defaultSearchLimit = 20

type localityService struct {
	localities store.LocalityRepository
}

// NewLocalityService creates the locality reference-table service.
func NewLocalityService(localities store.LocalityRepository) LocalityService {
	return &localityService{localities: localities}
}

func (s *localityService) AllLocalities(ctx context.Context) ([]models.Locality, error) {
	localities, err := s.localities.GetAllLocalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading localities: %w", err)
	}
	return localities, nil
}

// Search matches localities by name substring or postal-code prefix. An
// empty query returns no matches rather than the whole table.
func (s *localityService) Search(ctx context.Context, query string, limit int) ([]models.Locality, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Locality{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	localities, err := s.localities.SearchLocalities(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching localities: %w", err)
	}
	return localities, nil
}
