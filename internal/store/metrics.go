package store

import (
	"context"
	"sync"
	"time"

	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

type MetricsStore struct {
	mu sync.RWMutex
	// customer ID -> entity kind -> daily rows, append-ordered
	rows map[string]map[string][]models.MetricsRow
}

func NewMetricsStore() *MetricsStore {
	return &MetricsStore{rows: make(map[string]map[string][]models.MetricsRow)}
}

func (s *MetricsStore) Add(ctx context.Context, row models.MetricsRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rows[row.CustomerID] == nil {
		s.rows[row.CustomerID] = make(map[string][]models.MetricsRow)
	}
	s.rows[row.CustomerID][row.EntityKind] = append(s.rows[row.CustomerID][row.EntityKind], row)
	return nil
}

// ListWindow returns the rows of one entity kind whose date falls inside
// [start, end], both inclusive. An inverted window matches zero rows.
func (s *MetricsStore) ListWindow(ctx context.Context, customerID, kind string, start, end time.Time) ([]models.MetricsRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// ISO dates order lexically, so the window check needs no re-parsing.
	lo := start.Format(gaql.DateLayout)
	hi := end.Format(gaql.DateLayout)

	var out []models.MetricsRow
	for _, row := range s.rows[customerID][kind] {
		if row.Date >= lo && row.Date <= hi {
			out = append(out, row)
		}
	}
	return out, nil
}

// DeleteEntity drops all rows of one entity, used when its entity is removed
// through the CRUD surface.
func (s *MetricsStore) DeleteEntity(ctx context.Context, customerID, kind, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.rows[customerID][kind]
	kept := rows[:0]
	for _, row := range rows {
		if row.EntityID != entityID {
			kept = append(kept, row)
		}
	}
	if s.rows[customerID] != nil {
		s.rows[customerID][kind] = kept
	}
	return nil
}
