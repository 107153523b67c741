package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(s *models.Student) error {
	return r.db.Create(s).Error
}

func (r *StudentRepository) GetByID(id string) (*models.Student, error) {
	var s models.Student
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
