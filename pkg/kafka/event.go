package kafka

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLoanIssued       EventType = "loan.issued"
	EventLoanReturned     EventType = "loan.returned"
	EventLoanLost         EventType = "loan.lost"
	EventFineCreated      EventType = "fine.created"
	EventFinePaid         EventType = "fine.paid"
	EventFineWaived       EventType = "fine.waived"
	EventFineWrittenOff   EventType = "fine.written_off"
	EventStudentApproved  EventType = "student.approved"
	EventStudentRejected  EventType = "student.rejected"
	EventStudentBlocked   EventType = "student.blocked"
	EventStudentUnblocked EventType = "student.unblocked"
	EventCardIssued       EventType = "card.issued"
	EventCardLost         EventType = "card.lost"
)

// Event is published after a state change has been committed.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	StudentID int64     `json:"studentId"`
	LoanID    int64     `json:"loanId,omitempty"`
	FineID    int64     `json:"fineId,omitempty"`
	CardID    int64     `json:"cardId,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(typ EventType, studentID int64, ts time.Time) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		StudentID: studentID,
		Timestamp: ts.UTC(),
	}
}
