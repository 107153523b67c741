package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) FindByUserID(userID string) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// MarkRead is idempotent: an already-read or unknown id updates zero rows
// and is not an error.
func (r *NotificationRepository) MarkRead(id string) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}
