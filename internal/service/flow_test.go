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

// fixture wires services to one bus the way the router does, so these tests
// exercise the write → publish → notify chain end to end.
type fixture struct {
	db         *gorm.DB
	bus        *events.Bus
	gradebook  *GradebookService
	attendance *AttendanceService
	health     *HealthService
	discipline *DisciplineService
	enrollment *EnrollmentService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	seedSchool(t, db)
	bus := events.NewBus()
	notif := newNotificationService(db)
	notif.SubscribeTo(bus)
	return &fixture{
		db:         db,
		bus:        bus,
		gradebook:  NewGradebookService(repository.NewGradebookRepository(db), repository.NewAssignmentRepository(db), repository.NewFeedbackRepository(db), bus),
		attendance: NewAttendanceService(repository.NewAttendanceRepository(db), bus),
		health:     NewHealthService(repository.NewHealthRepository(db), bus),
		discipline: NewDisciplineService(repository.NewDisciplineRepository(db), bus),
		enrollment: NewEnrollmentService(repository.NewEnrollmentRepository(db), repository.NewLinkRepository(db)),
	}
}

func TestGradeSubmissionNotifiesStudentAndParents(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.gradebook.UpdateGrade("assignment-1", "student-1", 95, "solid work"))

	var grades []models.GradeEntry
	require.NoError(t, f.db.Find(&grades).Error)
	require.Len(t, grades, 1)
	assert.EqualValues(t, 95, grades[0].Points)

	require.Len(t, notificationsFor(t, f.db, "student-1"), 1)
	require.Len(t, notificationsFor(t, f.db, "parent-1"), 1)
	assert.Equal(t, events.KindGradesUpdated, notificationsFor(t, f.db, "parent-1")[0].Type)

	// The section view joins through the assignment.
	section, err := f.gradebook.GradebookForSection("section-1")
	require.NoError(t, err)
	require.Len(t, section, 1)
	assert.Equal(t, "student-1", section[0].StudentID)
}

func TestAttendanceMarkNotifiesStudentAndParents(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.attendance.Mark("section-1", "student-1", "2026-08-31", domain.AttendancePresent, ""))

	var records []models.AttendanceRecord
	require.NoError(t, f.db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AttendancePresent, records[0].Status)

	require.Len(t, notificationsFor(t, f.db, "student-1"), 1)
	require.Len(t, notificationsFor(t, f.db, "parent-1"), 1)
}

func TestNurseVisitNotifiesStudentAndParents(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.health.RecordVisit("student-1", "nurse-1", "headache, sent home"))

	var visits []models.NurseVisit
	require.NoError(t, f.db.Find(&visits).Error)
	require.Len(t, visits, 1)

	require.Len(t, notificationsFor(t, f.db, "student-1"), 1)
	require.Len(t, notificationsFor(t, f.db, "parent-1"), 1)
	assert.Equal(t, events.KindNurseVisitLogged, notificationsFor(t, f.db, "student-1")[0].Type)
}

func TestDisciplineRecordNotifiesWithActionType(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.discipline.Record("student-1", "admin-1", "detention", "late thrice"))

	var actions []models.DisciplineAction
	require.NoError(t, f.db.Find(&actions).Error)
	require.Len(t, actions, 1)

	parent := notificationsFor(t, f.db, "parent-1")
	require.Len(t, parent, 1)
	assert.Contains(t, parent[0].Message, "detention")
}

func TestNewlyLinkedParentReceivesLaterNotifications(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.enrollment.LinkParent("parent-2", "student-1", "father"))
	require.NoError(t, f.gradebook.UpdateGrade("assignment-1", "student-1", 88, ""))

	require.Len(t, notificationsFor(t, f.db, "parent-2"), 1)
}

func TestRoutingEvaluatedAtPublishTime(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.gradebook.UpdateGrade("assignment-1", "student-1", 70, ""))
	require.NoError(t, f.enrollment.LinkParent("parent-2", "student-1", "father"))

	// The link came after the event fired, so parent-2 has nothing.
	assert.Empty(t, notificationsFor(t, f.db, "parent-2"))
}

func TestFeedbackPublishesGradesUpdated(t *testing.T) {
	f := newFixture(t)
	var kinds []string
	f.bus.Subscribe(events.KindGradesUpdated, func(ev events.Event) { kinds = append(kinds, ev.Kind()) })

	require.NoError(t, f.gradebook.AddFeedback("student-1", "section-1", "Keep it up", "teacher-1"))

	var feedback []models.Feedback
	require.NoError(t, f.db.Find(&feedback).Error)
	require.Len(t, feedback, 1)
	assert.Equal(t, []string{events.KindGradesUpdated}, kinds)
}
