package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollment *service.EnrollmentService
}

func NewEnrollmentHandler(enrollment *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollment: enrollment}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req struct {
		StudentID    string `json:"studentId"`
		SectionID    string `json:"sectionId"`
		ParentID     string `json:"parentId"`
		Relationship string `json:"relationship"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" || req.SectionID == "" {
		c.String(http.StatusBadRequest, "studentId and sectionId are required")
		return
	}
	if err := h.enrollment.Enroll(req.StudentID, req.SectionID, req.ParentID, req.Relationship); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *EnrollmentHandler) LinkParent(c *gin.Context) {
	var req struct {
		ParentID     string `json:"parentId"`
		StudentID    string `json:"studentId"`
		Relationship string `json:"relationship"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ParentID == "" || req.StudentID == "" {
		c.String(http.StatusBadRequest, "parentId and studentId are required")
		return
	}
	if err := h.enrollment.LinkParent(req.ParentID, req.StudentID, req.Relationship); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
