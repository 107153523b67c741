package models

import "time"

type GradeEntry struct {
	ID           string  `gorm:"primaryKey;size:64" json:"id"`
	AssignmentID string  `gorm:"size:64;not null;index" json:"assignmentId"`
	StudentID    string  `gorm:"size:64;not null;index" json:"studentId"`
	Points       float64 `json:"points"`
	Comment      string  `gorm:"type:text" json:"comment"`
}

type Feedback struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	StudentID string    `gorm:"size:64;not null;index" json:"studentId"`
	SectionID string    `gorm:"size:64;index" json:"sectionId"`
	TeacherID string    `gorm:"size:64" json:"teacherId"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}
