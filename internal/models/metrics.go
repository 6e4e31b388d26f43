package models

// EntityKind names the record categories a search query can target. These are
// the only values accepted in a FROM clause.
const (
	KindCampaign  = "campaign"
	KindAdGroup   = "ad_group"
	KindAdGroupAd = "ad_group_ad"
)

// SupportedEntity reports whether kind is a searchable record category.
func SupportedEntity(kind string) bool {
	switch kind {
	case KindCampaign, KindAdGroup, KindAdGroupAd:
		return true
	}
	return false
}

// MetricsRow is one day of synthetic performance data for one entity.
// Date uses the 2006-01-02 layout.
type MetricsRow struct {
	CustomerID  string
	EntityKind  string
	EntityID    string
	Date        string
	Impressions int64
	Clicks      int64
	CostMicros  int64
	Conversions float64
}

// CTR is the click-through rate of the row, 0 when it had no impressions.
func (m MetricsRow) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions)
}
