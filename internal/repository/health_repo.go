package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type HealthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

func (r *HealthRepository) SaveVisit(v *models.NurseVisit) error {
	return r.db.Create(v).Error
}

func (r *HealthRepository) FindVisitsByStudentID(studentID string) ([]models.NurseVisit, error) {
	var list []models.NurseVisit
	err := r.db.Where("student_id = ?", studentID).Find(&list).Error
	return list, err
}
