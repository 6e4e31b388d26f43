package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/services"
)

func (h *Handler) Search(c *gin.Context) {
	var req v1.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.searchSrv.Search(c.Request.Context(), services.SearchParams{
		CustomerID: c.Param("customerId"),
		Query:      req.Query,
		PageSize:   req.PageSize,
		PageToken:  req.PageToken,
	})
	if err != nil {
		respondError(c, "search handler", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSearchResponse(page))
}
