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

type AdService struct {
	store *store.Store
}

func NewAdService(st *store.Store) *AdService {
	return &AdService{store: st}
}

type AdPatch struct {
	Status   *string
	FinalURL *string
}

func (s *AdService) List(ctx context.Context, customerID string) ([]models.AdGroupAd, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.AdGroupAd().List(ctx, customerID)
}

func (s *AdService) Get(ctx context.Context, customerID, id string) (*models.AdGroupAd, error) {
	if !s.store.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	return s.store.AdGroupAd().Get(ctx, customerID, id)
}

func (s *AdService) Create(ctx context.Context, a models.AdGroupAd) (models.AdGroupAd, error) {
	if !s.store.HasCustomer(a.CustomerID) {
		return models.AdGroupAd{}, srvErrors.NewCustomerNotFoundError(a.CustomerID)
	}
	if _, err := s.store.AdGroup().Get(ctx, a.CustomerID, a.AdGroupID); err != nil {
		return models.AdGroupAd{}, err
	}

	a.ID = uuid.NewString()
	if a.Status == "" {
		a.Status = models.StatusEnabled
	}
	if err := s.store.AdGroupAd().Create(ctx, a); err != nil {
		return models.AdGroupAd{}, err
	}

	err := s.store.Metrics().Add(ctx, models.MetricsRow{
		CustomerID: a.CustomerID,
		EntityKind: models.KindAdGroupAd,
		EntityID:   a.ID,
		Date:       time.Now().Format(gaql.DateLayout),
	})
	if err != nil {
		return models.AdGroupAd{}, err
	}
	return a, nil
}

func (s *AdService) Update(ctx context.Context, customerID, id string, patch AdPatch) (*models.AdGroupAd, error) {
	a, err := s.Get(ctx, customerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.FinalURL != nil {
		a.Ad.FinalURL = *patch.FinalURL
	}

	if err := s.store.AdGroupAd().Update(ctx, *a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdService) Delete(ctx context.Context, customerID, id string) error {
	if !s.store.HasCustomer(customerID) {
		return srvErrors.NewCustomerNotFoundError(customerID)
	}
	if err := s.store.AdGroupAd().Delete(ctx, customerID, id); err != nil {
		return err
	}
	return s.store.Metrics().DeleteEntity(ctx, customerID, models.KindAdGroupAd, id)
}
