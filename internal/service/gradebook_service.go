package service

import (
	"errors"
	"time"

	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradebookService struct {
	grades      *repository.GradebookRepository
	assignments *repository.AssignmentRepository
	feedback    *repository.FeedbackRepository
	bus         *events.Bus
}

func NewGradebookService(grades *repository.GradebookRepository, assignments *repository.AssignmentRepository, feedback *repository.FeedbackRepository, bus *events.Bus) *GradebookService {
	return &GradebookService{grades: grades, assignments: assignments, feedback: feedback, bus: bus}
}

// UpdateGrade appends a grade entry and publishes GradesUpdated. Publication
// is a side channel: the entry stays persisted even if fan-out fails.
func (s *GradebookService) UpdateGrade(assignmentID, studentID string, points float64, comment string) error {
	grade := &models.GradeEntry{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Points:       points,
		Comment:      comment,
	}
	if err := s.grades.SaveGrade(grade); err != nil {
		return err
	}
	sectionID := ""
	if a, err := s.assignments.GetByID(assignmentID); err == nil {
		sectionID = a.SectionID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	s.bus.Publish(events.NewGradesUpdated(studentID, sectionID))
	return nil
}

// AddFeedback stores teacher feedback and publishes GradesUpdated so
// dashboards refresh; the private student notification is a separate direct
// call made by the handler.
func (s *GradebookService) AddFeedback(studentID, sectionID, comment, teacherID string) error {
	f := &models.Feedback{
		ID:        uuid.NewString(),
		StudentID: studentID,
		SectionID: sectionID,
		TeacherID: teacherID,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.feedback.Save(f); err != nil {
		return err
	}
	s.bus.Publish(events.NewGradesUpdated(studentID, sectionID))
	return nil
}

func (s *GradebookService) GradesForStudent(studentID string) ([]models.GradeEntry, error) {
	return s.grades.FindByStudentID(studentID)
}

func (s *GradebookService) GradebookForSection(sectionID string) ([]models.GradeEntry, error) {
	return s.grades.FindBySectionID(sectionID)
}
