package service

import (
	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
)

type AttendanceService struct {
	repo *repository.AttendanceRepository
	bus  *events.Bus
}

func NewAttendanceService(repo *repository.AttendanceRepository, bus *events.Bus) *AttendanceService {
	return &AttendanceService{repo: repo, bus: bus}
}

func (s *AttendanceService) Mark(sectionID, studentID, date, status, reason string) error {
	record := &models.AttendanceRecord{
		ID:        uuid.NewString(),
		StudentID: studentID,
		SectionID: sectionID,
		Date:      date,
		Status:    status,
		Reason:    reason,
	}
	if err := s.repo.Save(record); err != nil {
		return err
	}
	s.bus.Publish(events.NewAttendanceUpdated(studentID))
	return nil
}

func (s *AttendanceService) ForStudent(studentID string) ([]models.AttendanceRecord, error) {
	return s.repo.FindByStudentID(studentID)
}
