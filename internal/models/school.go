package models

import "time"

type Class struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Subject string `gorm:"size:255" json:"subject"`
}

type Section struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	ClassID   string `gorm:"size:64;not null;index" json:"classId"`
	TeacherID string `gorm:"size:64;index" json:"teacherId"`
	Term      string `gorm:"size:64" json:"term"`
}

// Enrollment pairs a student with a section; the pair is unique so repeated
// enrollment is a no-op.
type Enrollment struct {
	StudentID string `gorm:"primaryKey;size:64;uniqueIndex:idx_enrollment_pair" json:"studentId"`
	SectionID string `gorm:"primaryKey;size:64;uniqueIndex:idx_enrollment_pair;index" json:"sectionId"`
}

type Assignment struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	SectionID string    `gorm:"size:64;not null;index" json:"sectionId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	MaxPoints float64   `json:"maxPoints"`
	DueDate   time.Time `json:"dueDate"`
}
