package models

import "github.com/adsmock/ads-api-mock/pkg/gaql"

// The query engine walks dynamically shaped records, so each entity is
// flattened into the nested map form the GAQL field paths address
// (campaign.id, metrics.clicks, segments.date, ...). One record is built per
// entity per metrics day.

func CampaignRecord(c Campaign, m MetricsRow) gaql.Record {
	return gaql.Record{
		"campaign": map[string]any{
			"id":                  c.ID,
			"name":                c.Name,
			"status":              c.Status,
			"resource_name":       c.ResourceName(),
			"advertising_channel": c.AdvertisingChannel,
			"bidding_strategy":    c.BiddingStrategy,
			"budget_micros":       c.BudgetMicros,
			"start_date":          c.StartDate,
			"end_date":            c.EndDate,
		},
		"metrics":  metricsMapping(m),
		"segments": segmentsMapping(m),
	}
}

func AdGroupRecord(g AdGroup, m MetricsRow) gaql.Record {
	return gaql.Record{
		"ad_group": map[string]any{
			"id":             g.ID,
			"name":           g.Name,
			"status":         g.Status,
			"type":           g.Type,
			"resource_name":  g.ResourceName(),
			"cpc_bid_micros": g.CPCBidMicros,
		},
		"campaign": map[string]any{
			"id": g.CampaignID,
		},
		"metrics":  metricsMapping(m),
		"segments": segmentsMapping(m),
	}
}

func AdGroupAdRecord(a AdGroupAd, m MetricsRow) gaql.Record {
	return gaql.Record{
		"ad_group_ad": map[string]any{
			"status":        a.Status,
			"resource_name": a.ResourceName(),
			"ad": map[string]any{
				"id":        a.ID,
				"name":      a.Ad.Name,
				"type":      a.Ad.Type,
				"final_url": a.Ad.FinalURL,
			},
		},
		"ad_group": map[string]any{
			"id": a.AdGroupID,
		},
		"metrics":  metricsMapping(m),
		"segments": segmentsMapping(m),
	}
}

func metricsMapping(m MetricsRow) map[string]any {
	return map[string]any{
		"impressions": m.Impressions,
		"clicks":      m.Clicks,
		"cost_micros": m.CostMicros,
		"conversions": m.Conversions,
		"ctr":         m.CTR(),
	}
}

func segmentsMapping(m MetricsRow) map[string]any {
	return map[string]any{
		"date": m.Date,
	}
}
