package store

import (
	"context"
	"sort"
	"sync"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

type CampaignStore struct {
	mu sync.RWMutex
	// customer ID -> campaign ID -> campaign
	byCustomer map[string]map[string]models.Campaign
}

func NewCampaignStore() *CampaignStore {
	return &CampaignStore{byCustomer: make(map[string]map[string]models.Campaign)}
}

// List returns the customer's campaigns ordered by ID for stable output.
func (s *CampaignStore) List(ctx context.Context, customerID string) ([]models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := make([]models.Campaign, 0, len(s.byCustomer[customerID]))
	for _, c := range s.byCustomer[customerID] {
		campaigns = append(campaigns, c)
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })
	return campaigns, nil
}

func (s *CampaignStore) Get(ctx context.Context, customerID, id string) (*models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byCustomer[customerID][id]
	if !ok {
		return nil, srvErrors.NewResourceNotFoundError("campaign", id)
	}
	return &c, nil
}

func (s *CampaignStore) Create(ctx context.Context, c models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byCustomer[c.CustomerID] == nil {
		s.byCustomer[c.CustomerID] = make(map[string]models.Campaign)
	}
	s.byCustomer[c.CustomerID][c.ID] = c
	return nil
}

func (s *CampaignStore) Update(ctx context.Context, c models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[c.CustomerID][c.ID]; !ok {
		return srvErrors.NewResourceNotFoundError("campaign", c.ID)
	}
	s.byCustomer[c.CustomerID][c.ID] = c
	return nil
}

func (s *CampaignStore) Delete(ctx context.Context, customerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCustomer[customerID][id]; !ok {
		return srvErrors.NewResourceNotFoundError("campaign", id)
	}
	delete(s.byCustomer[customerID], id)
	return nil
}
