package middleware

import (
	"net/http"
	"strings"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the bearer session token and sets the user in the
// request context.
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.String(http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.String(http.StatusUnauthorized, "invalid authorization format")
			c.Abort()
			return
		}
		user, err := auth.CurrentUser(parts[1])
		if err != nil {
			c.String(http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// GetUserID returns the authenticated user id (must be used after AuthRequired).
func GetUserID(c *gin.Context) string {
	v, _ := c.Get("user_id")
	if v == nil {
		return ""
	}
	return v.(string)
}

// GetRole returns the authenticated user's role.
func GetRole(c *gin.Context) string {
	v, _ := c.Get("role")
	if v == nil {
		return ""
	}
	return v.(string)
}
