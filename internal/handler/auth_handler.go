package handler

import (
	"errors"
	"net/http"
	"strings"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.String(http.StatusBadRequest, "username and password are required")
		return
	}
	session, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.String(http.StatusUnauthorized, "Invalid credentials")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	user, err := h.auth.CurrentUser(session.Token)
	if err != nil {
		c.String(http.StatusInternalServerError, "User not found for session")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "role": user.Role},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		if err := h.auth.Logout(parts[1]); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
