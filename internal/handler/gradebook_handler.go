package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type GradebookHandler struct {
	gradebook     *service.GradebookService
	notifications *service.NotificationService
}

func NewGradebookHandler(gradebook *service.GradebookService, notifications *service.NotificationService) *GradebookHandler {
	return &GradebookHandler{gradebook: gradebook, notifications: notifications}
}

func (h *GradebookHandler) SubmitGrade(c *gin.Context) {
	var req struct {
		TeacherID    string   `json:"teacherId"`
		SectionID    string   `json:"sectionId"`
		StudentID    string   `json:"studentId"`
		AssignmentID string   `json:"assignmentId"`
		Points       *float64 `json:"points"`
		Comment      string   `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TeacherID == "" || req.SectionID == "" || req.StudentID == "" || req.AssignmentID == "" || req.Points == nil {
		c.String(http.StatusBadRequest, "teacherId, sectionId, studentId, assignmentId, and numeric points are required")
		return
	}
	if err := h.gradebook.UpdateGrade(req.AssignmentID, req.StudentID, *req.Points, req.Comment); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SubmitFeedback stores the feedback and sends the private student-only
// notification directly, outside the event bus.
func (h *GradebookHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		TeacherID string `json:"teacherId"`
		StudentID string `json:"studentId"`
		SectionID string `json:"sectionId"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TeacherID == "" || req.StudentID == "" || req.SectionID == "" || req.Comment == "" {
		c.String(http.StatusBadRequest, "teacherId, studentId, sectionId, and comment are required")
		return
	}
	if err := h.gradebook.AddFeedback(req.StudentID, req.SectionID, req.Comment, req.TeacherID); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.notifications.NotifyFeedbackToStudent(req.TeacherID, req.StudentID, req.SectionID, req.Comment); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
