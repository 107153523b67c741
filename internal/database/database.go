package database

import (
	"os"
	"path/filepath"
	"time"

	"campus/config"
	"campus/internal/domain"
	"campus/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Student{},
		&models.Parent{},
		&models.Teacher{},
		&models.Nurse{},
		&models.ParentStudentLink{},
		&models.Class{},
		&models.Section{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.GradeEntry{},
		&models.Feedback{},
		&models.AttendanceRecord{},
		&models.NurseVisit{},
		&models.DisciplineAction{},
		&models.Notification{},
		&models.RolePermission{},
	)
}

// SeedDemo populates the well-known demo accounts and one section worth of
// school structure. Every write is a FirstOrCreate so reruns are no-ops.
func SeedDemo(db *gorm.DB) error {
	users := []struct {
		id, username, password, role string
	}{
		{"teacher-1", "teacher", "pw", domain.RoleTeacher},
		{"student-1", "student", "pw", domain.RoleStudent},
		{"parent-1", "parent", "pw", domain.RoleParent},
		{"nurse-1", "nurse", "pw", domain.RoleNurse},
		{"admin-1", "admin", "pw", domain.RoleAdministrator},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{ID: u.id, Username: u.username, PasswordHash: string(hash), Role: u.role}
		if err := db.Where(models.User{ID: u.id}).FirstOrCreate(&user).Error; err != nil {
			return err
		}
	}

	fixtures := []interface{}{
		&models.Student{ID: "student-1", Name: "Ada Lovelace"},
		&models.Parent{ID: "parent-1", Name: "Parent One"},
		&models.Teacher{ID: "teacher-1", Name: "Mr. T"},
		&models.Nurse{ID: "nurse-1", Name: "Nurse Joy"},
		&models.ParentStudentLink{ParentID: "parent-1", StudentID: "student-1", Relationship: "mother"},
		&models.Class{ID: "class-1", Name: "Math", Subject: "Algebra"},
		&models.Section{ID: "section-1", ClassID: "class-1", TeacherID: "teacher-1", Term: "Fall"},
		&models.Assignment{ID: "assignment-1", SectionID: "section-1", Title: "Essay", MaxPoints: 100, DueDate: time.Now()},
		&models.Enrollment{StudentID: "student-1", SectionID: "section-1"},
		&models.RolePermission{Role: domain.RoleTeacher, Permission: domain.PermGradeUpdate},
		&models.RolePermission{Role: domain.RoleTeacher, Permission: domain.PermAttendanceMark},
		&models.RolePermission{Role: domain.RoleNurse, Permission: domain.PermHealthRecord},
		&models.RolePermission{Role: domain.RoleAdministrator, Permission: domain.PermDisciplineRecord},
	}
	for _, f := range fixtures {
		if err := db.FirstOrCreate(f).Error; err != nil {
			return err
		}
	}
	return nil
}
