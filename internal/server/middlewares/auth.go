package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const developerTokenHeader = "developer-token"

// TokenValidator validates a bearer access token.
type TokenValidator interface {
	ValidateAccessToken(token string) error
}

// Authentication enforces the two credentials the simulated platform expects
// on every API call: a bearer access token and the developer-token header.
func Authentication(validator TokenValidator, developerToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		bearer, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || bearer == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if err := validator.ValidateAccessToken(bearer); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if c.GetHeader(developerTokenHeader) != developerToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid developer token"})
			return
		}
		c.Next()
	}
}
