package v1

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

// RegisterValidations installs the custom binding validators the API types
// reference. Call once before routing requests.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entitystatus", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case models.StatusEnabled, models.StatusPaused, models.StatusRemoved:
				return true
			}
			return false
		})
	}
}

func NewSearchResponse(page gaql.Page) SearchResponse {
	results := make([]map[string]any, 0, len(page.Results))
	for _, rec := range page.Results {
		results = append(results, map[string]any(rec))
	}
	return SearchResponse{
		Results:           results,
		NextPageToken:     page.NextPageToken,
		TotalResultsCount: page.TotalResultsCount,
	}
}

func NewCampaign(c models.Campaign) Campaign {
	return Campaign{
		Id:                 c.ID,
		ResourceName:       c.ResourceName(),
		Name:               c.Name,
		Status:             c.Status,
		AdvertisingChannel: c.AdvertisingChannel,
		BiddingStrategy:    c.BiddingStrategy,
		BudgetMicros:       c.BudgetMicros,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
	}
}

func NewCampaignList(campaigns []models.Campaign) CampaignList {
	out := CampaignList{Campaigns: make([]Campaign, 0, len(campaigns))}
	for _, c := range campaigns {
		out.Campaigns = append(out.Campaigns, NewCampaign(c))
	}
	out.Total = len(out.Campaigns)
	return out
}

func NewAdGroup(g models.AdGroup) AdGroup {
	return AdGroup{
		Id:           g.ID,
		ResourceName: g.ResourceName(),
		CampaignId:   g.CampaignID,
		Name:         g.Name,
		Status:       g.Status,
		Type:         g.Type,
		CpcBidMicros: g.CPCBidMicros,
	}
}

func NewAdGroupList(groups []models.AdGroup) AdGroupList {
	out := AdGroupList{AdGroups: make([]AdGroup, 0, len(groups))}
	for _, g := range groups {
		out.AdGroups = append(out.AdGroups, NewAdGroup(g))
	}
	out.Total = len(out.AdGroups)
	return out
}

func NewAdGroupAd(a models.AdGroupAd) AdGroupAd {
	return AdGroupAd{
		Id:           a.ID,
		ResourceName: a.ResourceName(),
		AdGroupId:    a.AdGroupID,
		Status:       a.Status,
		Name:         a.Ad.Name,
		Type:         a.Ad.Type,
		FinalUrl:     a.Ad.FinalURL,
		Headlines:    a.Ad.Headlines,
	}
}

func NewAdGroupAdList(ads []models.AdGroupAd) AdGroupAdList {
	out := AdGroupAdList{Ads: make([]AdGroupAd, 0, len(ads))}
	for _, a := range ads {
		out.Ads = append(out.Ads, NewAdGroupAd(a))
	}
	out.Total = len(out.Ads)
	return out
}

func NewTokenResponse(t models.Token) TokenResponse {
	return TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresIn:    t.ExpiresIn,
	}
}
