package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Save(f *models.Feedback) error {
	return r.db.Create(f).Error
}

func (r *FeedbackRepository) FindByStudentID(studentID string) ([]models.Feedback, error) {
	var list []models.Feedback
	err := r.db.Where("student_id = ?", studentID).Find(&list).Error
	return list, err
}
