package store

import "sync"

// Store provides access to all in-memory repositories. Each repository guards
// its own maps; the engine itself never touches shared state.
type Store struct {
	mu        sync.RWMutex
	customers map[string]struct{}

	campaigns *CampaignStore
	adGroups  *AdGroupStore
	ads       *AdGroupAdStore
	metrics   *MetricsStore
}

func NewStore() *Store {
	return &Store{
		customers: make(map[string]struct{}),
		campaigns: NewCampaignStore(),
		adGroups:  NewAdGroupStore(),
		ads:       NewAdGroupAdStore(),
		metrics:   NewMetricsStore(),
	}
}

func (s *Store) Campaign() *CampaignStore {
	return s.campaigns
}

func (s *Store) AdGroup() *AdGroupStore {
	return s.adGroups
}

func (s *Store) AdGroupAd() *AdGroupAdStore {
	return s.ads
}

func (s *Store) Metrics() *MetricsStore {
	return s.metrics
}

// RegisterCustomer marks a customer account as known. Requests against
// unknown customers fail with a not-found error.
func (s *Store) RegisterCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = struct{}{}
}

func (s *Store) HasCustomer(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.customers[id]
	return ok
}

func (s *Store) Customers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.customers))
	for id := range s.customers {
		out = append(out, id)
	}
	return out
}
