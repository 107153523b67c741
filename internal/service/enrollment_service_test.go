package service

import (
	"testing"

	"campus/internal/models"
	"campus/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(repository.NewEnrollmentRepository(db), repository.NewLinkRepository(db))
}

func TestEnrollIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	require.NoError(t, svc.Enroll("student-1", "section-1", "", ""))
	require.NoError(t, svc.Enroll("student-1", "section-1", "", ""))

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollWithParentCreatesLink(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	require.NoError(t, svc.Enroll("student-1", "section-1", "parent-1", ""))

	var link models.ParentStudentLink
	require.NoError(t, db.First(&link, "parent_id = ? AND student_id = ?", "parent-1", "student-1").Error)
	assert.Equal(t, "parent", link.Relationship)
}

func TestLinkParentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	require.NoError(t, svc.LinkParent("parent-1", "student-1", "mother"))
	require.NoError(t, svc.LinkParent("parent-1", "student-1", "mother"))

	var count int64
	require.NoError(t, db.Model(&models.ParentStudentLink{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
