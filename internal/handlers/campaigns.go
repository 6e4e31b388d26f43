package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/internal/services"
)

func (h *Handler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignSrv.List(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, "campaign handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCampaignList(campaigns))
}

func (h *Handler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignSrv.Get(c.Request.Context(), c.Param("customerId"), c.Param("id"))
	if err != nil {
		respondError(c, "campaign handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCampaign(*campaign))
}

func (h *Handler) CreateCampaign(c *gin.Context) {
	var req v1.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignSrv.Create(c.Request.Context(), models.Campaign{
		CustomerID:         c.Param("customerId"),
		Name:               req.Name,
		Status:             req.Status,
		AdvertisingChannel: req.AdvertisingChannel,
		BiddingStrategy:    req.BiddingStrategy,
		BudgetMicros:       req.BudgetMicros,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		respondError(c, "campaign handler", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewCampaign(campaign))
}

func (h *Handler) UpdateCampaign(c *gin.Context) {
	var req v1.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignSrv.Update(c.Request.Context(), c.Param("customerId"), c.Param("id"), services.CampaignPatch{
		Name:         req.Name,
		Status:       req.Status,
		BudgetMicros: req.BudgetMicros,
	})
	if err != nil {
		respondError(c, "campaign handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCampaign(*campaign))
}

func (h *Handler) DeleteCampaign(c *gin.Context) {
	if err := h.campaignSrv.Delete(c.Request.Context(), c.Param("customerId"), c.Param("id")); err != nil {
		respondError(c, "campaign handler", err)
		return
	}
	c.Status(http.StatusNoContent)
}
