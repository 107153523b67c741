package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	health *service.HealthService
}

func NewHealthHandler(health *service.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

func (h *HealthHandler) RecordVisit(c *gin.Context) {
	var req struct {
		NurseID   string `json:"nurseId"`
		StudentID string `json:"studentId"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NurseID == "" || req.StudentID == "" || req.Notes == "" {
		c.String(http.StatusBadRequest, "nurseId, studentId, and notes are required")
		return
	}
	if err := h.health.RecordVisit(req.StudentID, req.NurseID, req.Notes); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
