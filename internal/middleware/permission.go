package middleware

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

// RequirePermission checks that the authenticated user's role grants the
// permission. Must run after AuthRequired.
func RequirePermission(access *service.AccessControlService, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			c.String(http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		ok, err := access.Authorize(userID, permission)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			c.Abort()
			return
		}
		if !ok {
			c.String(http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
