package models

import "time"

// Append-only history rows: none of these are ever updated or deleted.

type AttendanceRecord struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	StudentID string `gorm:"size:64;not null;index" json:"studentId"`
	SectionID string `gorm:"size:64;index" json:"sectionId"`
	Date      string `gorm:"size:32" json:"date"`
	Status    string `gorm:"size:32;not null" json:"status"`
	Reason    string `gorm:"size:255" json:"reason"`
}

type NurseVisit struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	StudentID string    `gorm:"size:64;not null;index" json:"studentId"`
	NurseID   string    `gorm:"size:64" json:"nurseId"`
	VisitTime time.Time `json:"visitTime"`
	Notes     string    `gorm:"type:text" json:"notes"`
}

type DisciplineAction struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	StudentID  string    `gorm:"size:64;not null;index" json:"studentId"`
	AdminID    string    `gorm:"size:64" json:"adminId"`
	Date       time.Time `json:"date"`
	ActionType string    `gorm:"size:64;not null" json:"actionType"`
	Notes      string    `gorm:"type:text" json:"notes"`
}
