package repository

import (
	"errors"

	"campus/internal/models"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Save enrolls the student unless the (student, section) pair already exists.
func (r *EnrollmentRepository) Save(e *models.Enrollment) error {
	var existing models.Enrollment
	err := r.db.Where("student_id = ? AND section_id = ?", e.StudentID, e.SectionID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(e).Error
}

func (r *EnrollmentRepository) FindByStudentID(studentID string) ([]models.Enrollment, error) {
	var list []models.Enrollment
	err := r.db.Where("student_id = ?", studentID).Find(&list).Error
	return list, err
}
