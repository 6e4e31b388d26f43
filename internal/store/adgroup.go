package store

import (
	"context"
	"sort"
	"sync"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

type AdGroupStore struct {
	mu         sync.RWMutex
	byCustomer map[string]map[string]models.AdGroup
}

func NewAdGroupStore() *AdGroupStore {
	return &AdGroupStore{byCustomer: make(map[string]map[string]models.AdGroup)}
}

func (s *AdGroupStore) List(ctx context.Context, customerID string) ([]models.AdGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.AdGroup, 0, len(s.byCustomer[customerID]))
	for _, g := range s.byCustomer[customerID] {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *AdGroupStore) Get(ctx context.Context, customerID, id string) (*models.AdGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byCustomer[customerID][id]
	if !ok {
		return nil, srvErrors.NewResourceNotFoundError("ad group", id)
	}
	return &g, nil
}

func (s *AdGroupStore) Create(ctx context.Context, g models.AdGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byCustomer[g.CustomerID] == nil {
		s.byCustomer[g.CustomerID] = make(map[string]models.AdGroup)
	}
	s.byCustomer[g.CustomerID][g.ID] = g
	return nil
}

func (s *AdGroupStore) Update(ctx context.Context, g models.AdGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[g.CustomerID][g.ID]; !ok {
		return srvErrors.NewResourceNotFoundError("ad group", g.ID)
	}
	s.byCustomer[g.CustomerID][g.ID] = g
	return nil
}

func (s *AdGroupStore) Delete(ctx context.Context, customerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[customerID][id]; !ok {
		return srvErrors.NewResourceNotFoundError("ad group", id)
	}
	delete(s.byCustomer[customerID], id)
	return nil
}
