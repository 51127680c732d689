package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eduplan/timetable-engine/internal/httpapi/auth"
)

const bearerPrefix = "Bearer "

// RequireToken validates the Authorization header against issuer and
// aborts the request with 401 on failure.
func RequireToken(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "missing bearer token"}})
			return
		}
		claims, err := issuer.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"}})
			return
		}
		c.Set("caller", claims.Subject)
		c.Next()
	}
}
