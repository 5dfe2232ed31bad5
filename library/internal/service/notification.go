package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"go.uber.org/zap"
)

var notificationTemplates = map[kafka.EventType]string{
	kafka.EventLoanIssued:       "A book has been issued to you (loan #%d).",
	kafka.EventLoanReturned:     "Your return of loan #%d has been recorded.",
	kafka.EventLoanLost:         "Loan #%d has been marked as lost.",
	kafka.EventFineCreated:      "A fine of %s has been charged to your account.",
	kafka.EventFinePaid:         "Your payment of %s has been received.",
	kafka.EventFineWaived:       "A fine of %s has been waived.",
	kafka.EventFineWrittenOff:   "A fine of %s has been written off.",
	kafka.EventStudentApproved:  "Your library registration has been approved.",
	kafka.EventStudentRejected:  "Your library registration has been rejected.",
	kafka.EventStudentBlocked:   "Your borrowing privileges have been suspended.",
	kafka.EventStudentUnblocked: "Your borrowing privileges have been restored.",
	kafka.EventCardIssued:       "A new library card has been issued to you.",
	kafka.EventCardLost:         "Your library card has been reported lost.",
}

func notificationMessage(ev kafka.Event) string {
	tmpl, ok := notificationTemplates[ev.Type]
	if !ok {
		return string(ev.Type)
	}
	switch ev.Type {
	case kafka.EventLoanIssued, kafka.EventLoanReturned, kafka.EventLoanLost:
		return fmt.Sprintf(tmpl, ev.LoanID)
	case kafka.EventFineCreated, kafka.EventFinePaid, kafka.EventFineWaived, kafka.EventFineWrittenOff:
		return fmt.Sprintf(tmpl, ev.Amount)
	}
	return tmpl
}

// RecordNotification stores the in-app notification for a consumed event.
// Redelivered events are ignored.
func (s *Service) RecordNotification(ctx context.Context, ev kafka.Event) error {
	if ev.StudentID == 0 {
		return nil
	}
	inserted, err := s.repo.CreateNotification(ctx, model.Notification{
		EventID:   ev.ID,
		StudentID: ev.StudentID,
		Type:      string(ev.Type),
		Message:   notificationMessage(ev),
		CreatedAt: ev.Timestamp,
	})
	if err != nil {
		return err
	}
	if !inserted {
		s.log.Debug("duplicate event", zap.String("id", ev.ID))
	}
	return nil
}

func (s *Service) ListNotifications(ctx context.Context, studentID int64) ([]model.Notification, error) {
	return s.repo.ListNotifications(ctx, studentID)
}
