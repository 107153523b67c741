package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

// SectionDetail is a section row joined with its class and teacher names,
// the shape the listing endpoints return.
type SectionDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Term        string `json:"term"`
	TeacherName string `json:"teacherName"`
}

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) GetByID(id string) (*models.Section, error) {
	var s models.Section
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SectionRepository) ListDetails() ([]SectionDetail, error) {
	var rows []SectionDetail
	err := r.db.Table("sections s").
		Select("s.id, c.name AS name, s.term, t.name AS teacher_name").
		Joins("LEFT JOIN classes c ON c.id = s.class_id").
		Joins("LEFT JOIN teachers t ON t.id = s.teacher_id").
		Scan(&rows).Error
	return rows, err
}

func (r *SectionRepository) ListDetailsByStudent(studentID string) ([]SectionDetail, error) {
	var rows []SectionDetail
	err := r.db.Table("sections s").
		Select("s.id, c.name AS name, s.term, t.name AS teacher_name").
		Joins("JOIN enrollments e ON e.section_id = s.id").
		Joins("LEFT JOIN classes c ON c.id = s.class_id").
		Joins("LEFT JOIN teachers t ON t.id = s.teacher_id").
		Where("e.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}
