package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Username     string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;index" json:"role"`
}

// Session is an opaque bearer token bound to a user.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64" json:"token"`
	UserID    string    `gorm:"size:64;not null;index" json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
