package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/services"
)

// Authorize implements the authorization-code leg of the OAuth stub. It skips
// any consent screen and redirects straight back with a fresh code.
func (h *Handler) Authorize(c *gin.Context) {
	clientID := c.Query("client_id")
	redirectURI := c.Query("redirect_uri")
	if clientID == "" || redirectURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id and redirect_uri are required"})
		return
	}
	if responseType := c.Query("response_type"); responseType != "" && responseType != "code" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported response_type"})
		return
	}

	target, err := url.Parse(redirectURI)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid redirect_uri"})
		return
	}

	code, err := h.tokenSrv.IssueAuthCode(clientID)
	if err != nil {
		respondError(c, "oauth handler", err)
		return
	}

	query := target.Query()
	query.Set("code", code)
	if state := c.Query("state"); state != "" {
		query.Set("state", state)
	}
	target.RawQuery = query.Encode()

	c.Redirect(http.StatusFound, target.String())
}

func (h *Handler) ExchangeToken(c *gin.Context) {
	var req v1.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.GrantType {
	case services.GrantAuthorizationCode:
		token, err := h.tokenSrv.ExchangeCode(req.ClientId, req.ClientSecret, req.Code)
		if err != nil {
			respondError(c, "oauth handler", err)
			return
		}
		c.JSON(http.StatusOK, v1.NewTokenResponse(*token))
	case services.GrantRefreshToken:
		token, err := h.tokenSrv.Refresh(req.ClientId, req.ClientSecret, req.RefreshToken)
		if err != nil {
			respondError(c, "oauth handler", err)
			return
		}
		c.JSON(http.StatusOK, v1.NewTokenResponse(*token))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported grant_type"})
	}
}
