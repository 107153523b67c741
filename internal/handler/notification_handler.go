package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.notifications.List(c.Param("userId"))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, n := range list {
		out = append(out, gin.H{
			"id":        n.ID,
			"message":   n.Message,
			"type":      n.Type,
			"read":      n.Read,
			"createdAt": n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Param("id")); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) TeacherMessage(c *gin.Context) {
	var req struct {
		TeacherID string `json:"teacherId"`
		StudentID string `json:"studentId"`
		SectionID string `json:"sectionId"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TeacherID == "" || req.StudentID == "" || req.SectionID == "" || req.Message == "" {
		c.String(http.StatusBadRequest, "teacherId, studentId, sectionId, and message are required")
		return
	}
	if err := h.notifications.NotifyTeacherMessage(req.TeacherID, req.StudentID, req.SectionID, req.Message); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
