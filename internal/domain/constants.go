package domain

const (
	RoleStudent       = "student"
	RoleParent        = "parent"
	RoleTeacher       = "teacher"
	RoleNurse         = "nurse"
	RoleAdministrator = "administrator"
)

// Notification types that are not derived from a domain event.
const (
	NotificationTeacherMessage  = "TeacherMessage"
	NotificationTeacherFeedback = "FeedbackFromTeacher"
)

const (
	PermGradeUpdate      = "grade:update"
	PermAttendanceMark   = "attendance:mark"
	PermHealthRecord     = "health:record"
	PermDisciplineRecord = "discipline:record"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceTardy   = "Tardy"
)
