package domain

import (
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

type StudentAction string

const (
	ActionApprove StudentAction = "approve"
	ActionReject  StudentAction = "reject"
	ActionBlock   StudentAction = "block"
	ActionUnblock StudentAction = "unblock"
)

var studentTransitions = map[StudentAction]struct {
	from model.StudentStatus
	to   model.StudentStatus
}{
	ActionApprove: {model.StudentStatusPending, model.StudentStatusApproved},
	ActionReject:  {model.StudentStatusPending, model.StudentStatusRejected},
	ActionBlock:   {model.StudentStatusApproved, model.StudentStatusBlocked},
	ActionUnblock: {model.StudentStatusBlocked, model.StudentStatusApproved},
}

// TransitionStudent applies action to s. Rejected is terminal.
func TransitionStudent(s model.Student, action StudentAction, reason string, now time.Time) (model.Student, error) {
	tr, ok := studentTransitions[action]
	if !ok || s.Status != tr.from {
		return model.Student{}, errs.ErrInvalidTransition
	}
	s.Status = tr.to
	switch action {
	case ActionApprove:
		s.ApprovedAt = &now
	case ActionReject:
		s.RejectedAt = &now
		s.RejectionReason = &reason
	}
	return s, nil
}
