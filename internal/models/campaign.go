package models

// Status values shared by campaigns, ad groups, and ads.
const (
	StatusEnabled = "ENABLED"
	StatusPaused  = "PAUSED"
	StatusRemoved = "REMOVED"
)

type Campaign struct {
	ID                 string
	CustomerID         string
	Name               string
	Status             string
	AdvertisingChannel string
	BiddingStrategy    string
	BudgetMicros       int64
	StartDate          string
	EndDate            string
}

// ResourceName returns the Google-Ads-style resource path of the campaign.
func (c Campaign) ResourceName() string {
	return "customers/" + c.CustomerID + "/campaigns/" + c.ID
}
