package service

import (
	"fmt"
	"log"
	"time"

	"campus/internal/domain"
	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo    *repository.NotificationRepository
	routing *StudentParentRouter
}

func NewNotificationService(repo *repository.NotificationRepository, routing *StudentParentRouter) *NotificationService {
	return &NotificationService{repo: repo, routing: routing}
}

// SubscribeTo registers Notify for every domain event kind on the bus.
func (s *NotificationService) SubscribeTo(bus *events.Bus) {
	handler := func(ev events.Event) {
		if err := s.Notify(ev); err != nil {
			log.Printf("notification: %s fan-out failed: %v", ev.Kind(), err)
		}
	}
	bus.Subscribe(events.KindGradesUpdated, handler)
	bus.Subscribe(events.KindAttendanceUpdated, handler)
	bus.Subscribe(events.KindNurseVisitLogged, handler)
	bus.Subscribe(events.KindDisciplineRecorded, handler)
}

// Notify writes one notification row per recipient. Writes are sequential
// and not wrapped in a transaction: a mid-loop failure leaves the earlier
// recipients notified (best-effort, matching the persisted-write-first
// failure model).
func (s *NotificationService) Notify(ev events.Event) error {
	recipients, err := s.routing.RecipientsFor(ev)
	if err != nil {
		return err
	}
	message := buildMessage(ev)
	for _, userID := range recipients {
		n := &models.Notification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      ev.Kind(),
			Message:   message,
			Read:      false,
			CreatedAt: ev.OccurredAt(),
		}
		if err := s.repo.Create(n); err != nil {
			return err
		}
	}
	return nil
}

// NotifyTeacherMessage routes a direct teacher message to the student and
// every linked parent, bypassing the event bus.
func (s *NotificationService) NotifyTeacherMessage(teacherID, studentID, sectionID, message string) error {
	recipients, err := s.routing.RecipientsForStudentAndParents(studentID)
	if err != nil {
		return err
	}
	for _, userID := range recipients {
		n := &models.Notification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      domain.NotificationTeacherMessage,
			Message:   fmt.Sprintf("From %s (section %s): %s", teacherID, sectionID, message),
			Read:      false,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(n); err != nil {
			return err
		}
	}
	return nil
}

// NotifyFeedbackToStudent notifies the student only. Feedback is private
// between teacher and student; linked parents are deliberately excluded.
func (s *NotificationService) NotifyFeedbackToStudent(teacherID, studentID, sectionID, comment string) error {
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    studentID,
		Type:      domain.NotificationTeacherFeedback,
		Message:   fmt.Sprintf("From teacher-%s (section %s): %s", teacherID, sectionID, comment),
		Read:      false,
		CreatedAt: time.Now(),
	}
	return s.repo.Create(n)
}

func (s *NotificationService) List(userID string) ([]models.Notification, error) {
	return s.repo.FindByUserID(userID)
}

func (s *NotificationService) MarkRead(id string) error {
	return s.repo.MarkRead(id)
}

func buildMessage(ev events.Event) string {
	switch e := ev.(type) {
	case events.GradesUpdated:
		return fmt.Sprintf("Grades updated for student %s", e.StudentID)
	case events.AttendanceUpdated:
		return fmt.Sprintf("Attendance updated for student %s", e.StudentID)
	case events.NurseVisitLogged:
		return fmt.Sprintf("New nurse visit logged for student %s", e.StudentID)
	case events.DisciplineRecorded:
		return fmt.Sprintf("Discipline action %s recorded for student %s", e.ActionType, e.StudentID)
	default:
		return "New update available"
	}
}
