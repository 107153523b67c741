package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) FindByRole(role string) ([]models.RolePermission, error) {
	var perms []models.RolePermission
	err := r.db.Where("role = ?", role).Find(&perms).Error
	return perms, err
}
