package service

import (
	"errors"

	"campus/internal/models"
	"campus/internal/repository"

	"gorm.io/gorm"
)

// AccessControlService is a static role → permission lookup. No delegation,
// no hierarchy; authorization is a plain membership check.
type AccessControlService struct {
	permissions *repository.PermissionRepository
	users       *repository.UserRepository
}

func NewAccessControlService(permissions *repository.PermissionRepository, users *repository.UserRepository) *AccessControlService {
	return &AccessControlService{permissions: permissions, users: users}
}

func (s *AccessControlService) Authorize(userID, permission string) (bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	perms, err := s.permissions.FindByRole(user.Role)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p.Permission == permission {
			return true, nil
		}
	}
	return false, nil
}

func (s *AccessControlService) PermissionsForUser(userID string) ([]models.RolePermission, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.permissions.FindByRole(user.Role)
}
