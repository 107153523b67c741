package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(s *models.Session) error {
	return r.db.Create(s).Error
}

func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	var s models.Session
	err := r.db.Where("token = ?", token).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
