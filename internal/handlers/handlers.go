package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/internal/services"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

type SearchService interface {
	Search(ctx context.Context, params services.SearchParams) (gaql.Page, error)
}

type CampaignService interface {
	List(ctx context.Context, customerID string) ([]models.Campaign, error)
	Get(ctx context.Context, customerID, id string) (*models.Campaign, error)
	Create(ctx context.Context, c models.Campaign) (models.Campaign, error)
	Update(ctx context.Context, customerID, id string, patch services.CampaignPatch) (*models.Campaign, error)
	Delete(ctx context.Context, customerID, id string) error
}

type AdGroupService interface {
	List(ctx context.Context, customerID string) ([]models.AdGroup, error)
	Get(ctx context.Context, customerID, id string) (*models.AdGroup, error)
	Create(ctx context.Context, g models.AdGroup) (models.AdGroup, error)
	Update(ctx context.Context, customerID, id string, patch services.AdGroupPatch) (*models.AdGroup, error)
	Delete(ctx context.Context, customerID, id string) error
}

type AdService interface {
	List(ctx context.Context, customerID string) ([]models.AdGroupAd, error)
	Get(ctx context.Context, customerID, id string) (*models.AdGroupAd, error)
	Create(ctx context.Context, a models.AdGroupAd) (models.AdGroupAd, error)
	Update(ctx context.Context, customerID, id string, patch services.AdPatch) (*models.AdGroupAd, error)
	Delete(ctx context.Context, customerID, id string) error
}

type TokenService interface {
	IssueAuthCode(clientID string) (string, error)
	ExchangeCode(clientID, clientSecret, code string) (*models.Token, error)
	Refresh(clientID, clientSecret, refreshToken string) (*models.Token, error)
}

type Handler struct {
	searchSrv   SearchService
	campaignSrv CampaignService
	adGroupSrv  AdGroupService
	adSrv       AdService
	tokenSrv    TokenService
}

func New(search SearchService, campaigns CampaignService, adGroups AdGroupService, ads AdService, tokens TokenService) *Handler {
	return &Handler{
		searchSrv:   search,
		campaignSrv: campaigns,
		adGroupSrv:  adGroups,
		adSrv:       ads,
		tokenSrv:    tokens,
	}
}

// RegisterRoutes attaches the authenticated /v14 surface to router.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers/:customerId")

	customers.POST("/googleAds/search", h.Search)

	customers.GET("/campaigns", h.ListCampaigns)
	customers.POST("/campaigns", h.CreateCampaign)
	customers.GET("/campaigns/:id", h.GetCampaign)
	customers.PATCH("/campaigns/:id", h.UpdateCampaign)
	customers.DELETE("/campaigns/:id", h.DeleteCampaign)

	customers.GET("/adGroups", h.ListAdGroups)
	customers.POST("/adGroups", h.CreateAdGroup)
	customers.GET("/adGroups/:id", h.GetAdGroup)
	customers.PATCH("/adGroups/:id", h.UpdateAdGroup)
	customers.DELETE("/adGroups/:id", h.DeleteAdGroup)

	customers.GET("/adGroupAds", h.ListAds)
	customers.POST("/adGroupAds", h.CreateAd)
	customers.GET("/adGroupAds/:id", h.GetAd)
	customers.PATCH("/adGroupAds/:id", h.UpdateAd)
	customers.DELETE("/adGroupAds/:id", h.DeleteAd)
}

// RegisterOAuthRoutes attaches the unauthenticated OAuth stub to router.
func (h *Handler) RegisterOAuthRoutes(router *gin.RouterGroup) {
	router.GET("/oauth2/auth", h.Authorize)
	router.POST("/oauth2/token", h.ExchangeToken)
}

// respondError maps service errors onto the HTTP surface. Unexpected errors
// are logged and hidden behind a generic 500.
func respondError(c *gin.Context, logName string, err error) {
	var parseErr gaql.ParseError
	switch {
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsInvalidGrantError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case srvErrors.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		zap.S().Named(logName).Errorw("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
