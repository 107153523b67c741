package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendance *service.AttendanceService
}

func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req struct {
		TeacherID string `json:"teacherId"`
		SectionID string `json:"sectionId"`
		StudentID string `json:"studentId"`
		Date      string `json:"date"`
		Status    string `json:"status"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TeacherID == "" || req.SectionID == "" || req.StudentID == "" || req.Date == "" || req.Status == "" {
		c.String(http.StatusBadRequest, "teacherId, sectionId, studentId, date, and status are required")
		return
	}
	if err := h.attendance.Mark(req.SectionID, req.StudentID, req.Date, req.Status, req.Reason); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
