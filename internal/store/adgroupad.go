package store

import (
	"context"
	"sort"
	"sync"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

type AdGroupAdStore struct {
	mu         sync.RWMutex
	byCustomer map[string]map[string]models.AdGroupAd
}

func NewAdGroupAdStore() *AdGroupAdStore {
	return &AdGroupAdStore{byCustomer: make(map[string]map[string]models.AdGroupAd)}
}

func (s *AdGroupAdStore) List(ctx context.Context, customerID string) ([]models.AdGroupAd, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ads := make([]models.AdGroupAd, 0, len(s.byCustomer[customerID]))
	for _, a := range s.byCustomer[customerID] {
		ads = append(ads, a)
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads, nil
}

func (s *AdGroupAdStore) Get(ctx context.Context, customerID, id string) (*models.AdGroupAd, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byCustomer[customerID][id]
	if !ok {
		return nil, srvErrors.NewResourceNotFoundError("ad", id)
	}
	return &a, nil
}

func (s *AdGroupAdStore) Create(ctx context.Context, a models.AdGroupAd) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byCustomer[a.CustomerID] == nil {
		s.byCustomer[a.CustomerID] = make(map[string]models.AdGroupAd)
	}
	s.byCustomer[a.CustomerID][a.ID] = a
	return nil
}

func (s *AdGroupAdStore) Update(ctx context.Context, a models.AdGroupAd) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[a.CustomerID][a.ID]; !ok {
		return srvErrors.NewResourceNotFoundError("ad", a.ID)
	}
	s.byCustomer[a.CustomerID][a.ID] = a
	return nil
}

func (s *AdGroupAdStore) Delete(ctx context.Context, customerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[customerID][id]; !ok {
		return srvErrors.NewResourceNotFoundError("ad", id)
	}
	delete(s.byCustomer[customerID], id)
	return nil
}
