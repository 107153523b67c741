package repository

import (
	"errors"

	"campus/internal/models"

	"gorm.io/gorm"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Save creates the link unless the (parent, student) pair already exists.
func (r *LinkRepository) Save(l *models.ParentStudentLink) error {
	var existing models.ParentStudentLink
	err := r.db.Where("parent_id = ? AND student_id = ?", l.ParentID, l.StudentID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(l).Error
}

func (r *LinkRepository) FindByStudentID(studentID string) ([]models.ParentStudentLink, error) {
	var links []models.ParentStudentLink
	err := r.db.Where("student_id = ?", studentID).Find(&links).Error
	return links, err
}

func (r *LinkRepository) FindByParentID(parentID string) ([]models.ParentStudentLink, error) {
	var links []models.ParentStudentLink
	err := r.db.Where("parent_id = ?", parentID).Find(&links).Error
	return links, err
}
