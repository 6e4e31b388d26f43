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

type CampaignService struct {
	store *store.Store
}

func NewCampaignService(st *store.Store) *CampaignService {
	return &CampaignService{store: st}
}

// CampaignPatch carries the fields a PATCH request may change; nil fields are
// left untouched.
type CampaignPatch struct {
	Name         *string
	Status       *string
	BudgetMicros *int64
}

func (s *CampaignService) List(ctx context.Context, customerID string) ([]models.Campaign, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.Campaign().List(ctx, customerID)
}

func (s *CampaignService) Get(ctx context.Context, customerID, id string) (*models.Campaign, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.Campaign().Get(ctx, customerID, id)
}

func (s *CampaignService) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	if !s.store.HasCustomer(c.CustomerID) {
		return models.Campaign{}, srvErrors.NewCustomerNotFoundError(c.CustomerID)
	}

	c.ID = uuid.NewString()
	if c.Status == "" {
		c.Status = models.StatusEnabled
	}
	if err := s.store.Campaign().Create(ctx, c); err != nil {
		return models.Campaign{}, err
	}

	// A zero row for today makes the new campaign immediately visible to
	// search, which materializes records per metrics day.
	err := s.store.Metrics().Add(ctx, models.MetricsRow{
		CustomerID: c.CustomerID,
		EntityKind: models.KindCampaign,
		EntityID:   c.ID,
		Date:       time.Now().Format(gaql.DateLayout),
	})
	if err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

func (s *CampaignService) Update(ctx context.Context, customerID, id string, patch CampaignPatch) (*models.Campaign, error) {
	c, err := s.Get(ctx, customerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.BudgetMicros != nil {
		c.BudgetMicros = *patch.BudgetMicros
	}

	if err := s.store.Campaign().Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Delete(ctx context.Context, customerID, id string) error {
	if !s.store.HasCustomer(customerID) {
		return srvErrors.NewCustomerNotFoundError(customerID)
	}
	if err := s.store.Campaign().Delete(ctx, customerID, id); err != nil {
		return err
	}
	return s.store.Metrics().DeleteEntity(ctx, customerID, models.KindCampaign, id)
}
