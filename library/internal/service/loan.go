package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IssueLoan checks out a copy to a student. The loan insert, the copy status
// and the book recount commit together; the book and copy rows stay locked
// until then, so a concurrent issue of the same copy sees it issued.
func (s *Service) IssueLoan(ctx context.Context, studentID, copyID int64, issuedBy *int64) (model.Loan, error) {
	now := s.now()
	var loan model.Loan
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		cp, err := st.GetCopy(ctx, copyID)
		if err != nil {
			return errors.Wrap(err, "get copy")
		}
		book, err := st.GetBookForUpdate(ctx, cp.BookID)
		if err != nil {
			return errors.Wrap(err, "lock book")
		}
		if cp, err = st.GetCopyForUpdate(ctx, copyID); err != nil {
			return errors.Wrap(err, "lock copy")
		}
		student, err := st.GetStudent(ctx, studentID)
		if err != nil {
			return errors.Wrap(err, "get student")
		}

		newLoan, err := domain.IssueLoan(student, cp, book, issuedBy, now, s.policy.LoanPeriod)
		if err != nil {
			return err
		}
		if loan, err = st.CreateLoan(ctx, newLoan); err != nil {
			return errors.Wrap(err, "create loan")
		}
		if err := st.UpdateCopyStatus(ctx, cp.ID, model.CopyStatusIssued); err != nil {
			return errors.Wrap(err, "update copy")
		}
		_, err = st.RecountBook(ctx, book.ID)
		return errors.Wrap(err, "recount book")
	})
	if err != nil {
		return model.Loan{}, err
	}

	ev := kafka.NewEvent(kafka.EventLoanIssued, loan.StudentID, now)
	ev.LoanID = loan.ID
	s.publish(ctx, ev)
	s.log.Info("loan issued", zap.Int64("loan", loan.ID), zap.Int64("copy", copyID), zap.Int64("student", studentID))
	return loan, nil
}

// ReturnLoan closes the active loan of a copy, records an overdue fine when
// one has accrued and puts the copy back into circulation.
func (s *Service) ReturnLoan(ctx context.Context, copyID int64, returnedBy *int64, damageNotes string) (model.Loan, error) {
	now := s.now()
	var (
		loan model.Loan
		fine *model.Fine
		book model.Book
	)
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		cp, err := st.GetCopy(ctx, copyID)
		if err != nil {
			return errors.Wrap(err, "get copy")
		}
		if book, err = st.GetBookForUpdate(ctx, cp.BookID); err != nil {
			return errors.Wrap(err, "lock book")
		}
		if _, err = st.GetCopyForUpdate(ctx, copyID); err != nil {
			return errors.Wrap(err, "lock copy")
		}
		active, err := st.GetActiveLoanByCopyForUpdate(ctx, copyID)
		if err != nil {
			return err
		}

		closed, overdue, err := domain.ReturnLoan(active, book.Title, returnedBy, damageNotes, now, s.policy.DailyFineRate)
		if err != nil {
			return err
		}
		if err := st.UpdateLoan(ctx, closed); err != nil {
			return errors.Wrap(err, "update loan")
		}
		loan = closed
		if overdue != nil {
			created, err := st.CreateFine(ctx, *overdue)
			if err != nil {
				return errors.Wrap(err, "create fine")
			}
			fine = &created
		}
		if err := st.UpdateCopyStatus(ctx, copyID, model.CopyStatusAvailable); err != nil {
			return errors.Wrap(err, "update copy")
		}
		_, err = st.RecountBook(ctx, cp.BookID)
		return errors.Wrap(err, "recount book")
	})
	if err != nil {
		return model.Loan{}, err
	}

	ev := kafka.NewEvent(kafka.EventLoanReturned, loan.StudentID, now)
	ev.LoanID = loan.ID
	ev.Title = book.Title
	events := []kafka.Event{ev}
	if fine != nil {
		events = append(events, fineEvent(kafka.EventFineCreated, *fine, now))
	}
	s.publish(ctx, events...)
	return loan, nil
}

// MarkLoanLost closes an active loan as lost, charges the lost-book fee and
// takes the copy out of circulation.
func (s *Service) MarkLoanLost(ctx context.Context, loanID int64, markedBy *int64) (model.Loan, error) {
	now := s.now()
	var (
		loan model.Loan
		fine *model.Fine
	)
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetLoan(ctx, loanID)
		if err != nil {
			return errors.Wrap(err, "get loan")
		}
		book, err := st.GetBookForUpdate(ctx, current.BookID)
		if err != nil {
			return errors.Wrap(err, "lock book")
		}
		if _, err = st.GetCopyForUpdate(ctx, current.BookCopyID); err != nil {
			return errors.Wrap(err, "lock copy")
		}
		if current, err = st.GetLoanForUpdate(ctx, loanID); err != nil {
			return errors.Wrap(err, "lock loan")
		}

		closed, lostFine, err := domain.MarkLost(current, book.Title, markedBy, now, s.policy.LostBookFee)
		if err != nil {
			return err
		}
		if err := st.UpdateLoan(ctx, closed); err != nil {
			return errors.Wrap(err, "update loan")
		}
		loan = closed
		if lostFine != nil {
			created, err := st.CreateFine(ctx, *lostFine)
			if err != nil {
				return errors.Wrap(err, "create fine")
			}
			fine = &created
		}
		if err := st.UpdateCopyStatus(ctx, closed.BookCopyID, model.CopyStatusLost); err != nil {
			return errors.Wrap(err, "update copy")
		}
		_, err = st.RecountBook(ctx, closed.BookID)
		return errors.Wrap(err, "recount book")
	})
	if err != nil {
		return model.Loan{}, err
	}

	ev := kafka.NewEvent(kafka.EventLoanLost, loan.StudentID, now)
	ev.LoanID = loan.ID
	events := []kafka.Event{ev}
	if fine != nil {
		events = append(events, fineEvent(kafka.EventFineCreated, *fine, now))
	}
	s.publish(ctx, events...)
	return loan, nil
}

// CalculateFine reports what the loan would be charged if it were returned now.
func (s *Service) CalculateFine(ctx context.Context, loanID int64) (decimal.Decimal, error) {
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.CalculateFine(loan, s.now(), s.policy.DailyFineRate), nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context, filter model.LoanFilter) (model.ListLoans, error) {
	return s.repo.ListLoans(ctx, filter)
}

func (s *Service) ListOverdueLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListOverdueLoans(ctx, s.now())
}
