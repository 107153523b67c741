package service

import (
	"errors"

	"campus/internal/models"
	"campus/internal/repository"

	"gorm.io/gorm"
)

// Dashboard aggregates everything a student (or a parent looking at their
// children) sees on the portal landing page.
type Dashboard struct {
	StudentName string                          `json:"studentName"`
	Sections    []repository.SectionDetail      `json:"classesSummary"`
	Grades      []repository.GradeDetail        `json:"gradesSummary"`
	Attendance  []repository.AttendanceDetail   `json:"attendanceSummary"`
	Feedback    []models.Feedback               `json:"feedbackSummary"`
	Health      []models.NurseVisit             `json:"healthSummary"`
	Discipline  []models.DisciplineAction       `json:"disciplineSummary"`
}

type DashboardService struct {
	students   *repository.StudentRepository
	links      *repository.LinkRepository
	sections   *repository.SectionRepository
	grades     *repository.GradebookRepository
	attendance *repository.AttendanceRepository
	feedback   *repository.FeedbackRepository
	health     *repository.HealthRepository
	discipline *repository.DisciplineRepository
}

func NewDashboardService(
	students *repository.StudentRepository,
	links *repository.LinkRepository,
	sections *repository.SectionRepository,
	grades *repository.GradebookRepository,
	attendance *repository.AttendanceRepository,
	feedback *repository.FeedbackRepository,
	health *repository.HealthRepository,
	discipline *repository.DisciplineRepository,
) *DashboardService {
	return &DashboardService{
		students:   students,
		links:      links,
		sections:   sections,
		grades:     grades,
		attendance: attendance,
		feedback:   feedback,
		health:     health,
		discipline: discipline,
	}
}

func (s *DashboardService) ForStudent(studentID string) (*Dashboard, error) {
	d := &Dashboard{StudentName: "Unknown"}
	student, err := s.students.GetByID(studentID)
	if err == nil {
		d.StudentName = student.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if d.Sections, err = s.sections.ListDetailsByStudent(studentID); err != nil {
		return nil, err
	}
	if d.Grades, err = s.grades.FindDetailsByStudentID(studentID); err != nil {
		return nil, err
	}
	if d.Attendance, err = s.attendance.FindDetailsByStudentID(studentID); err != nil {
		return nil, err
	}
	if d.Feedback, err = s.feedback.FindByStudentID(studentID); err != nil {
		return nil, err
	}
	if d.Health, err = s.health.FindVisitsByStudentID(studentID); err != nil {
		return nil, err
	}
	if d.Discipline, err = s.discipline.FindActionsByStudentID(studentID); err != nil {
		return nil, err
	}
	return d, nil
}

// ForParent builds one dashboard per linked child.
func (s *DashboardService) ForParent(parentID string) ([]*Dashboard, error) {
	links, err := s.links.FindByParentID(parentID)
	if err != nil {
		return nil, err
	}
	dashboards := make([]*Dashboard, 0, len(links))
	for _, link := range links {
		d, err := s.ForStudent(link.StudentID)
		if err != nil {
			return nil, err
		}
		dashboards = append(dashboards, d)
	}
	return dashboards, nil
}
