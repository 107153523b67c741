package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type DisciplineRepository struct {
	db *gorm.DB
}

func NewDisciplineRepository(db *gorm.DB) *DisciplineRepository {
	return &DisciplineRepository{db: db}
}

func (r *DisciplineRepository) SaveAction(a *models.DisciplineAction) error {
	return r.db.Create(a).Error
}

func (r *DisciplineRepository) FindActionsByStudentID(studentID string) ([]models.DisciplineAction, error) {
	var list []models.DisciplineAction
	err := r.db.Where("student_id = ?", studentID).Find(&list).Error
	return list, err
}
