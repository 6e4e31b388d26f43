package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/internal/store"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

type AdGroupService struct {
	store *store.Store
}

func NewAdGroupService(st *store.Store) *AdGroupService {
	return &AdGroupService{store: st}
}

type AdGroupPatch struct {
	Name         *string
	Status       *string
	CPCBidMicros *int64
}

func (s *AdGroupService) List(ctx context.Context, customerID string) ([]models.AdGroup, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.AdGroup().List(ctx, customerID)
}

func (s *AdGroupService) Get(ctx context.Context, customerID, id string) (*models.AdGroup, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.AdGroup().Get(ctx, customerID, id)
}

func (s *AdGroupService) Create(ctx context.Context, g models.AdGroup) (models.AdGroup, error) {
	if !s.store.HasCustomer(g.CustomerID) {
		return models.AdGroup{}, srvErrors.NewCustomerNotFoundError(g.CustomerID)
	}
	// The parent campaign must exist.
	if _, err := s.store.Campaign().Get(ctx, g.CustomerID, g.CampaignID); err != nil {
		return models.AdGroup{}, err
	}

	g.ID = uuid.NewString()
	if g.Status == "" {
		g.Status = models.StatusEnabled
	}
	if err := s.store.AdGroup().Create(ctx, g); err != nil {
		return models.AdGroup{}, err
	}

	err := s.store.Metrics().Add(ctx, models.MetricsRow{
		CustomerID: g.CustomerID,
		EntityKind: models.KindAdGroup,
		EntityID:   g.ID,
		Date:       time.Now().Format(gaql.DateLayout),
	})
	if err != nil {
		return models.AdGroup{}, err
	}
	return g, nil
}

func (s *AdGroupService) Update(ctx context.Context, customerID, id string, patch AdGroupPatch) (*models.AdGroup, error) {
	g, err := s.Get(ctx, customerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	if patch.CPCBidMicros != nil {
		g.CPCBidMicros = *patch.CPCBidMicros
	}

	if err := s.store.AdGroup().Update(ctx, *g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *AdGroupService) Delete(ctx context.Context, customerID, id string) error {
	if !s.store.HasCustomer(customerID) {
		return srvErrors.NewCustomerNotFoundError(customerID)
	}
	if err := s.store.AdGroup().Delete(ctx, customerID, id); err != nil {
		return err
	}
	return s.store.Metrics().DeleteEntity(ctx, customerID, models.KindAdGroup, id)
}
