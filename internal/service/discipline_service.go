package service

import (
	"time"

	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
)

type DisciplineService struct {
	repo *repository.DisciplineRepository
	bus  *events.Bus
}

func NewDisciplineService(repo *repository.DisciplineRepository, bus *events.Bus) *DisciplineService {
	return &DisciplineService{repo: repo, bus: bus}
}

func (s *DisciplineService) Record(studentID, adminID, actionType, notes string) error {
	action := &models.DisciplineAction{
		ID:         uuid.NewString(),
		StudentID:  studentID,
		AdminID:    adminID,
		Date:       time.Now(),
		ActionType: actionType,
		Notes:      notes,
	}
	if err := s.repo.SaveAction(action); err != nil {
		return err
	}
	s.bus.Publish(events.NewDisciplineRecorded(studentID, actionType))
	return nil
}

func (s *DisciplineService) ForStudent(studentID string) ([]models.DisciplineAction, error) {
	return s.repo.FindActionsByStudentID(studentID)
}
