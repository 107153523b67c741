package handler

import (
	"net/http"

	"campus/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Student(c *gin.Context) {
	d, err := h.dashboard.ForStudent(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, dashboardDTO(d))
}

// Parent flattens all linked children into a single summary.
func (h *DashboardHandler) Parent(c *gin.Context) {
	dashboards, err := h.dashboard.ForParent(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	merged := gin.H{"grades": []gin.H{}, "attendance": []gin.H{}, "feedback": []gin.H{}, "health": []gin.H{}}
	grades := []gin.H{}
	attendance := []gin.H{}
	feedback := []gin.H{}
	health := []gin.H{}
	for _, d := range dashboards {
		dto := dashboardDTO(d)
		grades = append(grades, dto["grades"].([]gin.H)...)
		attendance = append(attendance, dto["attendance"].([]gin.H)...)
		feedback = append(feedback, dto["feedback"].([]gin.H)...)
		health = append(health, dto["health"].([]gin.H)...)
	}
	merged["grades"] = grades
	merged["attendance"] = attendance
	merged["feedback"] = feedback
	merged["health"] = health
	c.JSON(http.StatusOK, merged)
}

func dashboardDTO(d *service.Dashboard) gin.H {
	grades := make([]gin.H, 0, len(d.Grades))
	for _, g := range d.Grades {
		grades = append(grades, gin.H{
			"assignment":  g.AssignmentID,
			"points":      g.Points,
			"comment":     g.Comment,
			"sectionId":   g.SectionID,
			"sectionName": g.SectionName,
			"teacherName": g.TeacherName,
		})
	}
	attendance := make([]gin.H, 0, len(d.Attendance))
	for _, a := range d.Attendance {
		attendance = append(attendance, gin.H{
			"date":        a.Date,
			"status":      a.Status,
			"sectionId":   a.SectionID,
			"sectionName": a.SectionName,
			"teacherName": a.TeacherName,
		})
	}
	feedback := make([]gin.H, 0, len(d.Feedback))
	for _, f := range d.Feedback {
		feedback = append(feedback, gin.H{"comment": f.Comment, "createdAt": f.CreatedAt})
	}
	health := make([]gin.H, 0, len(d.Health))
	for _, v := range d.Health {
		health = append(health, gin.H{
			"notes":     v.Notes,
			"visitTime": v.VisitTime,
			"studentId": v.StudentID,
			"nurseId":   v.NurseID,
		})
	}
	return gin.H{
		"studentName": d.StudentName,
		"grades":      grades,
		"attendance":  attendance,
		"feedback":    feedback,
		"health":      health,
	}
}
