package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type DisciplineHandler struct {
	discipline *service.DisciplineService
}

func NewDisciplineHandler(discipline *service.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{discipline: discipline}
}

func (h *DisciplineHandler) Record(c *gin.Context) {
	var req struct {
		AdminID    string `json:"adminId"`
		StudentID  string `json:"studentId"`
		ActionType string `json:"actionType"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AdminID == "" || req.StudentID == "" || req.ActionType == "" {
		c.String(http.StatusBadRequest, "adminId, studentId, and actionType are required")
		return
	}
	if err := h.discipline.Record(req.StudentID, req.AdminID, req.ActionType, req.Notes); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
