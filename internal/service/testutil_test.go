package service

import (
	"testing"

	"campus/internal/database"
	"campus/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedSchool(t *testing.T, db *gorm.DB) {
	t.Helper()
	fixtures := []interface{}{
		&models.Student{ID: "student-1", Name: "Ada Lovelace"},
		&models.Parent{ID: "parent-1", Name: "Parent One"},
		&models.Teacher{ID: "teacher-1", Name: "Mr. T"},
		&models.ParentStudentLink{ParentID: "parent-1", StudentID: "student-1", Relationship: "mother"},
		&models.Class{ID: "class-1", Name: "Math", Subject: "Algebra"},
		&models.Section{ID: "section-1", ClassID: "class-1", TeacherID: "teacher-1", Term: "Fall"},
		&models.Assignment{ID: "assignment-1", SectionID: "section-1", Title: "Essay", MaxPoints: 100},
		&models.Enrollment{StudentID: "student-1", SectionID: "section-1"},
	}
	for _, f := range fixtures {
		require.NoError(t, db.Create(f).Error)
	}
}

func notificationsFor(t *testing.T, db *gorm.DB, userID string) []models.Notification {
	t.Helper()
	var list []models.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&list).Error)
	return list
}
