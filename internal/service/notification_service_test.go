package service

import (
	"testing"

	"campus/internal/domain"
	"campus/internal/events"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repository.NewNotificationRepository(db),
		NewStudentParentRouter(repository.NewLinkRepository(db)),
	)
}

func TestNotifyCreatesOneRowPerRecipient(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	svc := newNotificationService(db)

	require.NoError(t, svc.Notify(events.NewGradesUpdated("student-1", "section-1")))

	student := notificationsFor(t, db, "student-1")
	parent := notificationsFor(t, db, "parent-1")
	require.Len(t, student, 1)
	require.Len(t, parent, 1)
	assert.Equal(t, events.KindGradesUpdated, student[0].Type)
	assert.Equal(t, "Grades updated for student student-1", student[0].Message)
	assert.False(t, student[0].Read)
}

func TestNotifyDisciplineMessageContainsActionType(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	svc := newNotificationService(db)

	require.NoError(t, svc.Notify(events.NewDisciplineRecorded("student-1", "detention")))

	student := notificationsFor(t, db, "student-1")
	require.Len(t, student, 1)
	assert.Contains(t, student[0].Message, "detention")
}

func TestNotifyFeedbackGoesToStudentOnly(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	require.NoError(t, db.Create(&models.ParentStudentLink{ParentID: "parent-2", StudentID: "student-1", Relationship: "father"}).Error)
	svc := newNotificationService(db)

	require.NoError(t, svc.NotifyFeedbackToStudent("teacher-1", "student-1", "section-1", "Keep it up"))

	student := notificationsFor(t, db, "student-1")
	require.Len(t, student, 1)
	assert.Equal(t, domain.NotificationTeacherFeedback, student[0].Type)
	assert.Equal(t, "From teacher-teacher-1 (section section-1): Keep it up", student[0].Message)
	assert.Empty(t, notificationsFor(t, db, "parent-1"))
	assert.Empty(t, notificationsFor(t, db, "parent-2"))
}

func TestNotifyTeacherMessageReachesStudentAndParents(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	svc := newNotificationService(db)

	require.NoError(t, svc.NotifyTeacherMessage("teacher-1", "student-1", "section-1", "See me after class"))

	student := notificationsFor(t, db, "student-1")
	parent := notificationsFor(t, db, "parent-1")
	require.Len(t, student, 1)
	require.Len(t, parent, 1)
	assert.Equal(t, domain.NotificationTeacherMessage, student[0].Type)
	assert.Equal(t, "From teacher-1 (section section-1): See me after class", parent[0].Message)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	svc := newNotificationService(db)
	require.NoError(t, svc.Notify(events.NewAttendanceUpdated("student-1")))

	n := notificationsFor(t, db, "student-1")[0]
	require.NoError(t, svc.MarkRead(n.ID))
	require.NoError(t, svc.MarkRead(n.ID))

	var reloaded models.Notification
	require.NoError(t, db.First(&reloaded, "id = ?", n.ID).Error)
	assert.True(t, reloaded.Read)

	// Unknown ids are not an error.
	require.NoError(t, svc.MarkRead("does-not-exist"))
}

func TestListReturnsOnlyOwnNotifications(t *testing.T) {
	db := newTestDB(t)
	seedSchool(t, db)
	svc := newNotificationService(db)
	require.NoError(t, svc.Notify(events.NewGradesUpdated("student-1", "section-1")))

	list, err := svc.List("parent-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "parent-1", list[0].UserID)
}
