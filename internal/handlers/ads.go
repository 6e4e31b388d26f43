package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/models"
	"github.com/adsmock/ads-api-mock/internal/services"
)

func (h *Handler) ListAds(c *gin.Context) {
	ads, err := h.adSrv.List(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, "ad handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroupAdList(ads))
}

func (h *Handler) GetAd(c *gin.Context) {
	ad, err := h.adSrv.Get(c.Request.Context(), c.Param("customerId"), c.Param("id"))
	if err != nil {
		respondError(c, "ad handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroupAd(*ad))
}

func (h *Handler) CreateAd(c *gin.Context) {
	var req v1.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.adSrv.Create(c.Request.Context(), models.AdGroupAd{
		CustomerID: c.Param("customerId"),
		AdGroupID:  req.AdGroupId,
		Status:     req.Status,
		Ad: models.Ad{
			Name:      req.Name,
			Type:      req.Type,
			FinalURL:  req.FinalUrl,
			Headlines: req.Headlines,
		},
	})
	if err != nil {
		respondError(c, "ad handler", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewAdGroupAd(ad))
}

func (h *Handler) UpdateAd(c *gin.Context) {
	var req v1.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.adSrv.Update(c.Request.Context(), c.Param("customerId"), c.Param("id"), services.AdPatch{
		Status:   req.Status,
		FinalURL: req.FinalUrl,
	})
	if err != nil {
		respondError(c, "ad handler", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewAdGroupAd(*ad))
}

func (h *Handler) DeleteAd(c *gin.Context) {
	if err := h.adSrv.Delete(c.Request.Context(), c.Param("customerId"), c.Param("id")); err != nil {
		respondError(c, "ad handler", err)
		return
	}
	c.Status(http.StatusNoContent)
}
