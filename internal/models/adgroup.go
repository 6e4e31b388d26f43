package models

type AdGroup struct {
	ID            string
	CustomerID    string
	CampaignID    string
	Name          string
	Status        string
	Type          string
	CPCBidMicros  int64
	TargetingMode string
}

// ResourceName returns the Google-Ads-style resource path of the ad group.
func (g AdGroup) ResourceName() string {
	return "customers/" + g.CustomerID + "/adGroups/" + g.ID
}
