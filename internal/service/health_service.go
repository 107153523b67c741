package service

import (
	"time"

	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
)

type HealthService struct {
	repo *repository.HealthRepository
	bus  *events.Bus
}

func NewHealthService(repo *repository.HealthRepository, bus *events.Bus) *HealthService {
	return &HealthService{repo: repo, bus: bus}
}

func (s *HealthService) RecordVisit(studentID, nurseID, notes string) error {
	visit := &models.NurseVisit{
		ID:        uuid.NewString(),
		StudentID: studentID,
		NurseID:   nurseID,
		VisitTime: time.Now(),
		Notes:     notes,
	}
	if err := s.repo.SaveVisit(visit); err != nil {
		return err
	}
	s.bus.Publish(events.NewNurseVisitLogged(studentID, notes))
	return nil
}

func (s *HealthService) VisitsForStudent(studentID string) ([]models.NurseVisit, error) {
	return s.repo.FindVisitsByStudentID(studentID)
}
