package v1

// Request and response shapes of the /v14 API surface. Field names follow the
// camelCase JSON convention of the simulated platform; OAuth payloads keep
// their snake_case wire names.

type SearchRequest struct {
	Query     string `json:"query" binding:"required"`
	PageSize  int    `json:"pageSize" binding:"omitempty,gte=1,lte=10000"`
	PageToken string `json:"pageToken"`
}

type SearchResponse struct {
	Results           []map[string]any `json:"results"`
	NextPageToken     string           `json:"nextPageToken,omitempty"`
	TotalResultsCount int              `json:"totalResultsCount"`
}

type Campaign struct {
	Id                 string `json:"id"`
	ResourceName       string `json:"resourceName"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	AdvertisingChannel string `json:"advertisingChannelType,omitempty"`
	BiddingStrategy    string `json:"biddingStrategyType,omitempty"`
	BudgetMicros       int64  `json:"budgetMicros,omitempty"`
	StartDate          string `json:"startDate,omitempty"`
	EndDate            string `json:"endDate,omitempty"`
}

type CampaignList struct {
	Campaigns []Campaign `json:"campaigns"`
	Total     int        `json:"total"`
}

type CreateCampaignRequest struct {
	Name               string `json:"name" binding:"required"`
	Status             string `json:"status" binding:"omitempty,entitystatus"`
	AdvertisingChannel string `json:"advertisingChannelType"`
	BiddingStrategy    string `json:"biddingStrategyType"`
	BudgetMicros       int64  `json:"budgetMicros" binding:"omitempty,gte=0"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
}

type UpdateCampaignRequest struct {
	Name         *string `json:"name"`
	Status       *string `json:"status" binding:"omitempty,entitystatus"`
	BudgetMicros *int64  `json:"budgetMicros" binding:"omitempty,gte=0"`
}

type AdGroup struct {
	Id           string `json:"id"`
	ResourceName string `json:"resourceName"`
	CampaignId   string `json:"campaignId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type,omitempty"`
	CpcBidMicros int64  `json:"cpcBidMicros,omitempty"`
}

type AdGroupList struct {
	AdGroups []AdGroup `json:"adGroups"`
	Total    int       `json:"total"`
}

type CreateAdGroupRequest struct {
	CampaignId   string `json:"campaignId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Status       string `json:"status" binding:"omitempty,entitystatus"`
	Type         string `json:"type"`
	CpcBidMicros int64  `json:"cpcBidMicros" binding:"omitempty,gte=0"`
}

type UpdateAdGroupRequest struct {
	Name         *string `json:"name"`
	Status       *string `json:"status" binding:"omitempty,entitystatus"`
	CpcBidMicros *int64  `json:"cpcBidMicros" binding:"omitempty,gte=0"`
}

type AdGroupAd struct {
	Id           string   `json:"id"`
	ResourceName string   `json:"resourceName"`
	AdGroupId    string   `json:"adGroupId"`
	Status       string   `json:"status"`
	Name         string   `json:"name,omitempty"`
	Type         string   `json:"type,omitempty"`
	FinalUrl     string   `json:"finalUrl,omitempty"`
	Headlines    []string `json:"headlines,omitempty"`
}

type AdGroupAdList struct {
	Ads   []AdGroupAd `json:"ads"`
	Total int         `json:"total"`
}

type CreateAdRequest struct {
	AdGroupId string   `json:"adGroupId" binding:"required"`
	Status    string   `json:"status" binding:"omitempty,entitystatus"`
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type"`
	FinalUrl  string   `json:"finalUrl" binding:"omitempty,url"`
	Headlines []string `json:"headlines"`
}

type UpdateAdRequest struct {
	Status   *string `json:"status" binding:"omitempty,entitystatus"`
	FinalUrl *string `json:"finalUrl" binding:"omitempty,url"`
}

type TokenRequest struct {
	GrantType    string `form:"grant_type" binding:"required"`
	Code         string `form:"code"`
	RefreshToken string `form:"refresh_token"`
	ClientId     string `form:"client_id" binding:"required"`
	ClientSecret string `form:"client_secret" binding:"required"`
	RedirectUri  string `form:"redirect_uri"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
