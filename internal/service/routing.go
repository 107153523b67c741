package service

import (
	"campus/internal/events"
	"campus/internal/repository"
)

// StudentParentRouter resolves who should be told about a domain event:
// the subject student first, then every linked parent in link-store order.
type StudentParentRouter struct {
	links *repository.LinkRepository
}

func NewStudentParentRouter(links *repository.LinkRepository) *StudentParentRouter {
	return &StudentParentRouter{links: links}
}

func (r *StudentParentRouter) RecipientsFor(ev events.Event) ([]string, error) {
	studentID := ev.SubjectStudentID()
	if studentID == "" {
		return nil, nil
	}
	return r.RecipientsForStudentAndParents(studentID)
}

// RecipientsForStudentAndParents is the same computation without an event,
// used for direct teacher-to-student messaging. No dedup is performed; the
// link store enforces (parent, student) uniqueness.
func (r *StudentParentRouter) RecipientsForStudentAndParents(studentID string) ([]string, error) {
	links, err := r.links.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	recipients := make([]string, 0, len(links)+1)
	recipients = append(recipients, studentID)
	for _, l := range links {
		recipients = append(recipients, l.ParentID)
	}
	return recipients, nil
}
