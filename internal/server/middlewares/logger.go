package middlewares

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger returns a gin middleware that logs every request through the global
// zap logger.
func Logger() gin.HandlerFunc {
	return ginzap.Ginzap(zap.S().Desugar(), time.RFC3339, true)
}
