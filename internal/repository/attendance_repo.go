package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Save(a *models.AttendanceRecord) error {
	return r.db.Create(a).Error
}

func (r *AttendanceRepository) FindByStudentID(studentID string) ([]models.AttendanceRecord, error) {
	var list []models.AttendanceRecord
	err := r.db.Where("student_id = ?", studentID).Find(&list).Error
	return list, err
}

// AttendanceDetail is an attendance row joined with section and teacher
// names for dashboard rendering.
type AttendanceDetail struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	SectionID   string `json:"sectionId"`
	SectionName string `json:"sectionName"`
	TeacherName string `json:"teacherName"`
}

func (r *AttendanceRepository) FindDetailsByStudentID(studentID string) ([]AttendanceDetail, error) {
	var rows []AttendanceDetail
	err := r.db.Table("attendance_records ar").
		Select("ar.date, ar.status, s.id AS section_id, c.name AS section_name, t.name AS teacher_name").
		Joins("LEFT JOIN sections s ON s.id = ar.section_id").
		Joins("LEFT JOIN classes c ON c.id = s.class_id").
		Joins("LEFT JOIN teachers t ON t.id = s.teacher_id").
		Where("ar.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}
