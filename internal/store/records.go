package store

import (
	"context"
	"time"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

// ListRecords materializes the searchable records of one entity kind for one
// customer, scoped to the [start, end] date window: one record per entity per
// metrics day. Rows whose entity has been deleted through the CRUD surface
// are skipped.
//
// The search service consumes this through its RecordSource interface; the
// query engine itself never touches the store.
func (s *Store) ListRecords(ctx context.Context, customerID, kind string, start, end time.Time) ([]gaql.Record, error) {
	if !s.HasCustomer(customerID) {
		return nil, srvErrors.NewCustomerNotFoundError(customerID)
	}
	if !models.SupportedEntity(kind) {
		return nil, srvErrors.NewValidationError("unsupported entity: " + kind)
	}

	rows, err := s.metrics.ListWindow(ctx, customerID, kind, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]gaql.Record, 0, len(rows))
	for _, row := range rows {
		switch kind {
		case models.KindCampaign:
			c, err := s.campaigns.Get(ctx, customerID, row.EntityID)
			if err != nil {
				continue
			}
			records = append(records, models.CampaignRecord(*c, row))
		case models.KindAdGroup:
			g, err := s.adGroups.Get(ctx, customerID, row.EntityID)
			if err != nil {
				continue
			}
			records = append(records, models.AdGroupRecord(*g, row))
		case models.KindAdGroupAd:
			a, err := s.ads.Get(ctx, customerID, row.EntityID)
			if err != nil {
				continue
			}
			records = append(records, models.AdGroupAdRecord(*a, row))
		}
	}
	return records, nil
}
