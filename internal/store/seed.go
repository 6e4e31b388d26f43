package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
	"github.com/adsmock/ads-api-mock/pkg/scheduler"
)

// SeedParams controls synthetic data generation. Generation is deterministic
// for a given RandomSeed so integration suites can assert on exact results.
type SeedParams struct {
	Customers            []string
	CampaignsPerCustomer int
	AdGroupsPerCampaign  int
	AdsPerAdGroup        int
	MetricsDays          int
	RandomSeed           int64
	Now                  time.Time
}

var (
	campaignThemes = []string{"Brand Awareness", "Performance Max", "Retargeting", "Holiday Sale", "Lead Gen"}
	channelTypes   = []string{"SEARCH", "DISPLAY", "VIDEO", "SHOPPING"}
	biddingTypes   = []string{"MAXIMIZE_CLICKS", "MAXIMIZE_CONVERSIONS", "TARGET_CPA", "MANUAL_CPC"}
	statusWheel    = []string{models.StatusEnabled, models.StatusEnabled, models.StatusEnabled, models.StatusPaused}
)

// Seed populates the store for every configured customer, one unit of work
// per customer, and blocks until generation finishes.
func (s *Store) Seed(ctx context.Context, params SeedParams, sched *scheduler.Scheduler) {
	for i, customerID := range params.Customers {
		s.RegisterCustomer(customerID)
		sched.AddWork(func(ctx context.Context) error {
			return s.seedCustomer(ctx, customerID, int64(i), params)
		})
	}
	sched.Close()
}

func (s *Store) seedCustomer(ctx context.Context, customerID string, offset int64, params SeedParams) error {
	// Per-customer generator: customers seed independently of scheduling
	// order, so concurrent generation stays deterministic.
	rng := rand.New(rand.NewSource(params.RandomSeed + offset))

	for i := 0; i < params.CampaignsPerCustomer; i++ {
		campaign := models.Campaign{
			ID:                 fmt.Sprintf("%d", 20000000+offset*10000+int64(i)),
			CustomerID:         customerID,
			Name:               fmt.Sprintf("%s %d", campaignThemes[i%len(campaignThemes)], i+1),
			Status:             statusWheel[rng.Intn(len(statusWheel))],
			AdvertisingChannel: channelTypes[rng.Intn(len(channelTypes))],
			BiddingStrategy:    biddingTypes[rng.Intn(len(biddingTypes))],
			BudgetMicros:       (rng.Int63n(500) + 10) * 1_000_000,
			StartDate:          params.Now.AddDate(0, 0, -params.MetricsDays).Format(gaql.DateLayout),
		}
		if err := s.campaigns.Create(ctx, campaign); err != nil {
			return err
		}
		if err := s.seedMetrics(ctx, rng, customerID, models.KindCampaign, campaign.ID, params); err != nil {
			return err
		}

		for j := 0; j < params.AdGroupsPerCampaign; j++ {
			group := models.AdGroup{
				ID:           fmt.Sprintf("%s%02d", campaign.ID, j),
				CustomerID:   customerID,
				CampaignID:   campaign.ID,
				Name:         fmt.Sprintf("%s - Ad Group %d", campaign.Name, j+1),
				Status:       statusWheel[rng.Intn(len(statusWheel))],
				Type:         "SEARCH_STANDARD",
				CPCBidMicros: (rng.Int63n(900) + 100) * 10_000,
			}
			if err := s.adGroups.Create(ctx, group); err != nil {
				return err
			}
			if err := s.seedMetrics(ctx, rng, customerID, models.KindAdGroup, group.ID, params); err != nil {
				return err
			}

			for k := 0; k < params.AdsPerAdGroup; k++ {
				ad := models.AdGroupAd{
					ID:         fmt.Sprintf("%s%02d", group.ID, k),
					CustomerID: customerID,
					AdGroupID:  group.ID,
					Status:     statusWheel[rng.Intn(len(statusWheel))],
					Ad: models.Ad{
						Name:     fmt.Sprintf("%s - Ad %d", group.Name, k+1),
						Type:     "RESPONSIVE_SEARCH_AD",
						FinalURL: fmt.Sprintf("https://example.com/%s/%d", customerID, k),
						Headlines: []string{
							"Shop the collection",
							"Free shipping today",
						},
					},
				}
				if err := s.ads.Create(ctx, ad); err != nil {
					return err
				}
				if err := s.seedMetrics(ctx, rng, customerID, models.KindAdGroupAd, ad.ID, params); err != nil {
					return err
				}
			}
		}
	}

	zap.S().Named("seed").Infow("customer dataset generated",
		"customer", customerID,
		"campaigns", params.CampaignsPerCustomer,
		"days", params.MetricsDays,
	)
	return nil
}

func (s *Store) seedMetrics(ctx context.Context, rng *rand.Rand, customerID, kind, entityID string, params SeedParams) error {
	for d := params.MetricsDays; d >= 1; d-- {
		impressions := rng.Int63n(50_000)
		clicks := int64(0)
		if impressions > 0 {
			clicks = rng.Int63n(impressions/10 + 1)
		}
		row := models.MetricsRow{
			CustomerID:  customerID,
			EntityKind:  kind,
			EntityID:    entityID,
			Date:        params.Now.AddDate(0, 0, -d).Format(gaql.DateLayout),
			Impressions: impressions,
			Clicks:      clicks,
			CostMicros:  clicks * (rng.Int63n(2_000_000) + 50_000),
			Conversions: float64(clicks) * rng.Float64() * 0.2,
		}
		if err := s.metrics.Add(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
