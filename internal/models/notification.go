package models

import "time"

type Notification struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"userId"`
	Type      string    `gorm:"size:50;not null;index" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

// RolePermission grants a permission string to every user of a role.
type RolePermission struct {
	Role       string `gorm:"primaryKey;size:20" json:"role"`
	Permission string `gorm:"primaryKey;size:64" json:"permission"`
}
