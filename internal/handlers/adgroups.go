package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/internal/services"
)

func (h *Handler) ListAdGroups(c *gin.Context) {
	groups, err := h.adGroupSrv.List(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, "adgroup handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroupList(groups))
}

func (h *Handler) GetAdGroup(c *gin.Context) {
	group, err := h.adGroupSrv.Get(c.Request.Context(), c.Param("customerId"), c.Param("id"))
	if err != nil {
		respondError(c, "adgroup handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroup(*group))
}

func (h *Handler) CreateAdGroup(c *gin.Context) {
	var req v1.CreateAdGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.adGroupSrv.Create(c.Request.Context(), models.AdGroup{
		CustomerID:   c.Param("customerId"),
		CampaignID:   req.CampaignId,
		Name:         req.Name,
		Status:       req.Status,
		Type:         req.Type,
		CPCBidMicros: req.CpcBidMicros,
	})
	if err != nil {
		respondError(c, "adgroup handler", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewAdGroup(group))
}

func (h *Handler) UpdateAdGroup(c *gin.Context) {
	var req v1.UpdateAdGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.adGroupSrv.Update(c.Request.Context(), c.Param("customerId"), c.Param("id"), services.AdGroupPatch{
		Name:         req.Name,
		Status:       req.Status,
		CPCBidMicros: req.CpcBidMicros,
	})
	if err != nil {
		respondError(c, "adgroup handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroup(*group))
}

func (h *Handler) DeleteAdGroup(c *gin.Context) {
	if err := h.adGroupSrv.Delete(c.Request.Context(), c.Param("customerId"), c.Param("id")); err != nil {
		respondError(c, "adgroup handler", err)
		return
	}
	c.Status(http.StatusNoContent)
}
