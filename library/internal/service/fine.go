package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func fineEvent(typ kafka.EventType, f model.Fine, now time.Time) kafka.Event {
	ev := kafka.NewEvent(typ, f.StudentID, now)
	ev.FineID = f.ID
	if f.LoanID != nil {
		ev.LoanID = *f.LoanID
	}
	ev.Amount = f.Amount.StringFixed(2)
	return ev
}

// WaiveFine waives every pending fine of a loan and returns how many changed.
// The loan's fine_amount is left as the historical charge.
func (s *Service) WaiveFine(ctx context.Context, loanID int64, waivedBy *int64, reason string) (int64, error) {
	now := s.now()
	var waived []model.Fine
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetLoan(ctx, loanID); err != nil {
			return errors.Wrap(err, "get loan")
		}
		pending, err := st.ListPendingFinesForUpdate(ctx, loanID)
		if err != nil {
			return errors.Wrap(err, "lock pending fines")
		}
		waived = make([]model.Fine, 0, len(pending))
		for _, f := range pending {
			f, err = domain.WaiveFine(f, waivedBy, reason, now)
			if err != nil {
				return err
			}
			if err := st.UpdateFine(ctx, f); err != nil {
				return errors.Wrapf(err, "update fine %d", f.ID)
			}
			waived = append(waived, f)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	events := make([]kafka.Event, 0, len(waived))
	for _, f := range waived {
		events = append(events, fineEvent(kafka.EventFineWaived, f, now))
	}
	s.publish(ctx, events...)
	return int64(len(waived)), nil
}

// PayFine settles a pending fine. Paying an overdue fine also flags the loan.
func (s *Service) PayFine(ctx context.Context, fineID int64) (model.Fine, error) {
	now := s.now()
	var fine model.Fine
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetFineForUpdate(ctx, fineID)
		if err != nil {
			return errors.Wrap(err, "lock fine")
		}
		if fine, err = domain.PayFine(current, now); err != nil {
			return err
		}
		if err := st.UpdateFine(ctx, fine); err != nil {
			return errors.Wrap(err, "update fine")
		}
		if fine.Type == model.FineTypeOverdue && fine.LoanID != nil {
			return errors.Wrap(st.MarkLoanFinePaid(ctx, *fine.LoanID), "mark loan fine paid")
		}
		return nil
	})
	if err != nil {
		return model.Fine{}, err
	}
	s.publish(ctx, fineEvent(kafka.EventFinePaid, fine, now))
	return fine, nil
}

func (s *Service) WriteOffFine(ctx context.Context, fineID int64) (model.Fine, error) {
	now := s.now()
	var fine model.Fine
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetFineForUpdate(ctx, fineID)
		if err != nil {
			return errors.Wrap(err, "lock fine")
		}
		if fine, err = domain.WriteOffFine(current); err != nil {
			return err
		}
		return errors.Wrap(st.UpdateFine(ctx, fine), "update fine")
	})
	if err != nil {
		return model.Fine{}, err
	}
	s.publish(ctx, fineEvent(kafka.EventFineWrittenOff, fine, now))
	return fine, nil
}

// RecordDamageFine charges a student for damage found on a loaned copy.
func (s *Service) RecordDamageFine(ctx context.Context, loanID int64, amount decimal.Decimal, notes string) (model.Fine, error) {
	now := s.now()
	var fine model.Fine
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		loan, err := st.GetLoan(ctx, loanID)
		if err != nil {
			return errors.Wrap(err, "get loan")
		}
		book, err := st.GetBook(ctx, loan.BookID)
		if err != nil {
			return errors.Wrap(err, "get book")
		}
		damage, err := domain.DamageFine(loan, book.Title, amount, notes, now)
		if err != nil {
			return err
		}
		fine, err = st.CreateFine(ctx, damage)
		return errors.Wrap(err, "create fine")
	})
	if err != nil {
		return model.Fine{}, err
	}
	s.publish(ctx, fineEvent(kafka.EventFineCreated, fine, now))
	return fine, nil
}

func (s *Service) ListFines(ctx context.Context, studentID int64) ([]model.Fine, error) {
	return s.repo.ListFines(ctx, studentID)
}
