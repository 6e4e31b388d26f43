package models

// AdGroupAd links an ad creative to an ad group, mirroring the ad_group_ad
// entity of the simulated API.
type AdGroupAd struct {
	ID         string
	CustomerID string
	AdGroupID  string
	Status     string
	Ad         Ad
}

type Ad struct {
	Name         string
	Type         string
	FinalURL     string
	Headlines    []string
	Descriptions []string
}

// ResourceName returns the Google-Ads-style resource path of the ad.
func (a AdGroupAd) ResourceName() string {
	return "customers/" + a.CustomerID + "/adGroupAds/" + a.AdGroupID + "~" + a.ID
}
