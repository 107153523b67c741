package repository

import (
	"campus/internal/models"

	"gorm.io/gorm"
)

type GradebookRepository struct {
	db *gorm.DB
}

func NewGradebookRepository(db *gorm.DB) *GradebookRepository {
	return &GradebookRepository{db: db}
}

func (r *GradebookRepository) SaveGrade(g *models.GradeEntry) error {
	return r.db.Create(g).Error
}

func (r *GradebookRepository) FindByStudentID(studentID string) ([]models.GradeEntry, error) {
	var grades []models.GradeEntry
	err := r.db.Where("student_id = ?", studentID).Find(&grades).Error
	return grades, err
}

// GradeDetail is a grade entry joined with its assignment's section and
// teacher, the shape dashboards render.
type GradeDetail struct {
	AssignmentID string  `json:"assignmentId"`
	Points       float64 `json:"points"`
	Comment      string  `json:"comment"`
	SectionID    string  `json:"sectionId"`
	SectionName  string  `json:"sectionName"`
	TeacherName  string  `json:"teacherName"`
}

func (r *GradebookRepository) FindDetailsByStudentID(studentID string) ([]GradeDetail, error) {
	var rows []GradeDetail
	err := r.db.Table("grade_entries g").
		Select("g.assignment_id, g.points, g.comment, s.id AS section_id, c.name AS section_name, t.name AS teacher_name").
		Joins("LEFT JOIN assignments a ON a.id = g.assignment_id").
		Joins("LEFT JOIN sections s ON s.id = a.section_id").
		Joins("LEFT JOIN classes c ON c.id = s.class_id").
		Joins("LEFT JOIN teachers t ON t.id = s.teacher_id").
		Where("g.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}

func (r *GradebookRepository) FindBySectionID(sectionID string) ([]models.GradeEntry, error) {
	var grades []models.GradeEntry
	err := r.db.
		Joins("JOIN assignments a ON a.id = grade_entries.assignment_id").
		Where("a.section_id = ?", sectionID).
		Find(&grades).Error
	return grades, err
}

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) GetByID(id string) (*models.Assignment, error) {
	var a models.Assignment
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
