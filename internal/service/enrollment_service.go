package service

import (
	"campus/internal/models"
	"campus/internal/repository"
)

type EnrollmentService struct {
	enrollments *repository.EnrollmentRepository
	links       *repository.LinkRepository
}

func NewEnrollmentService(enrollments *repository.EnrollmentRepository, links *repository.LinkRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, links: links}
}

// Enroll adds the student to the section and optionally links a parent.
// Both writes are idempotent on their natural keys.
func (s *EnrollmentService) Enroll(studentID, sectionID, parentID, relationship string) error {
	if err := s.enrollments.Save(&models.Enrollment{StudentID: studentID, SectionID: sectionID}); err != nil {
		return err
	}
	if parentID == "" {
		return nil
	}
	if relationship == "" {
		relationship = "parent"
	}
	return s.links.Save(&models.ParentStudentLink{
		ParentID:     parentID,
		StudentID:    studentID,
		Relationship: relationship,
	})
}

// LinkParent records a parent-student link directly.
func (s *EnrollmentService) LinkParent(parentID, studentID, relationship string) error {
	if relationship == "" {
		relationship = "parent"
	}
	return s.links.Save(&models.ParentStudentLink{
		ParentID:     parentID,
		StudentID:    studentID,
		Relationship: relationship,
	})
}
