package domain

import (
	"fmt"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// IssueLoan checks eligibility and availability and builds the new active loan.
// Pending fines do not block issuance.
func IssueLoan(student model.Student, cp model.BookCopy, book model.Book, issuedBy *int64, now time.Time, period time.Duration) (model.Loan, error) {
	if student.Status != model.StudentStatusApproved {
		return model.Loan{}, errs.ErrStudentNotEligible
	}
	if cp.BookID != book.ID {
		return model.Loan{}, errors.Errorf("copy %d does not belong to book %d", cp.ID, book.ID)
	}
	if cp.Status != model.CopyStatusAvailable || book.IsArchived {
		return model.Loan{}, errs.ErrCopyUnavailable
	}
	return model.Loan{
		StudentID:  student.ID,
		BookCopyID: cp.ID,
		BookID:     cp.BookID,
		IssuedBy:   issuedBy,
		IssuedDate: now,
		DueDate:    now.Add(period),
		Status:     model.LoanStatusActive,
		FineAmount: decimal.Zero,
	}, nil
}

// ReturnLoan closes an active loan. The fine is computed from the loan as
// it was before closing; a positive fine yields a pending overdue Fine.
func ReturnLoan(loan model.Loan, title string, returnedBy *int64, damageNotes string, now time.Time, dailyRate decimal.Decimal) (model.Loan, *model.Fine, error) {
	if loan.Status != model.LoanStatusActive {
		return model.Loan{}, nil, errs.ErrNoActiveLoan
	}
	amount := CalculateFine(loan, now, dailyRate)

	loan.Status = model.LoanStatusReturned
	loan.ReturnedDate = &now
	loan.ReturnedBy = returnedBy
	loan.FineAmount = amount
	if damageNotes != "" {
		loan.DamageNotes = &damageNotes
	}

	if !amount.IsPositive() {
		return loan, nil, nil
	}
	loanID := loan.ID
	fine := NewFine(loan.StudentID, &loanID, model.FineTypeOverdue, amount, overdueDescription(title), now)
	return loan, &fine, nil
}

// MarkLost closes an active loan as lost and charges the replacement fee.
func MarkLost(loan model.Loan, title string, markedBy *int64, now time.Time, fee decimal.Decimal) (model.Loan, *model.Fine, error) {
	if loan.Status != model.LoanStatusActive {
		return model.Loan{}, nil, errs.ErrNoActiveLoan
	}
	loan.Status = model.LoanStatusLost
	loan.ReturnedDate = &now
	loan.ReturnedBy = markedBy
	loan.FineAmount = fee.Round(2)

	if !fee.IsPositive() {
		return loan, nil, nil
	}
	loanID := loan.ID
	fine := NewFine(loan.StudentID, &loanID, model.FineTypeLostBook, fee, fmt.Sprintf("Lost book %q", title), now)
	return loan, &fine, nil
}

// ChangeCopyStatus covers manual status changes. Issued is owned by loans
// and can be neither set nor left this way.
func ChangeCopyStatus(cp model.BookCopy, to model.CopyStatus) (model.BookCopy, error) {
	if cp.Status == model.CopyStatusIssued || to == model.CopyStatusIssued {
		return model.BookCopy{}, errs.ErrInvalidTransition
	}
	switch to {
	case model.CopyStatusAvailable, model.CopyStatusDamaged, model.CopyStatusLost:
	default:
		return model.BookCopy{}, errs.ErrInvalidTransition
	}
	cp.Status = to
	return cp, nil
}
