package models

// Role-specific profile rows, kept separate from users because a user
// account may exist without a profile and vice versa.

type Student struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type Parent struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type Teacher struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type Nurse struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

// ParentStudentLink connects a parent to a student. Links are created via
// enrollment or explicit linking and are never updated or deleted.
type ParentStudentLink struct {
	ParentID     string `gorm:"primaryKey;size:64;uniqueIndex:idx_parent_student" json:"parentId"`
	StudentID    string `gorm:"primaryKey;size:64;uniqueIndex:idx_parent_student;index" json:"studentId"`
	Relationship string `gorm:"size:64" json:"relationship"`
}

func (ParentStudentLink) TableName() string {
	return "parent_student_links"
}
