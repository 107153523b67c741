package events

import "time"

// Event kinds. The set is closed: one constant per variant below.
const (
	KindGradesUpdated      = "GradesUpdated"
	KindAttendanceUpdated  = "AttendanceUpdated"
	KindNurseVisitLogged   = "NurseVisitLogged"
	KindDisciplineRecorded = "DisciplineRecorded"
)

// Event is an immutable fact describing a completed state change. Events are
// constructed by a domain service right after a successful write and consumed
// synchronously by bus subscribers; they are never persisted.
type Event interface {
	Kind() string
	OccurredAt() time.Time
	// SubjectStudentID identifies the student the change concerns.
	SubjectStudentID() string
}

type base struct {
	At time.Time `json:"occurredAt"`
}

func (b base) OccurredAt() time.Time { return b.At }

type GradesUpdated struct {
	base
	StudentID string `json:"studentId"`
	SectionID string `json:"sectionId"`
}

func NewGradesUpdated(studentID, sectionID string) GradesUpdated {
	return GradesUpdated{base: base{At: time.Now()}, StudentID: studentID, SectionID: sectionID}
}

func (GradesUpdated) Kind() string { return KindGradesUpdated }
func (e GradesUpdated) SubjectStudentID() string { return e.StudentID }

type AttendanceUpdated struct {
	base
	StudentID string `json:"studentId"`
}

func NewAttendanceUpdated(studentID string) AttendanceUpdated {
	return AttendanceUpdated{base: base{At: time.Now()}, StudentID: studentID}
}

func (AttendanceUpdated) Kind() string { return KindAttendanceUpdated }
func (e AttendanceUpdated) SubjectStudentID() string { return e.StudentID }

type NurseVisitLogged struct {
	base
	StudentID string `json:"studentId"`
	Notes     string `json:"notes,omitempty"`
}

func NewNurseVisitLogged(studentID, notes string) NurseVisitLogged {
	return NurseVisitLogged{base: base{At: time.Now()}, StudentID: studentID, Notes: notes}
}

func (NurseVisitLogged) Kind() string { return KindNurseVisitLogged }
func (e NurseVisitLogged) SubjectStudentID() string { return e.StudentID }

type DisciplineRecorded struct {
	base
	StudentID  string `json:"studentId"`
	ActionType string `json:"actionType"`
}

func NewDisciplineRecorded(studentID, actionType string) DisciplineRecorded {
	return DisciplineRecorded{base: base{At: time.Now()}, StudentID: studentID, ActionType: actionType}
}

func (DisciplineRecorded) Kind() string { return KindDisciplineRecorded }
func (e DisciplineRecorded) SubjectStudentID() string { return e.StudentID }
