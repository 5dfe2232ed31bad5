package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var loanColumns = []string{"id", "student_id", "book_copy_id", "book_id", "issued_by", "returned_by", "issued_date", "due_date", "returned_date", "status", "fine_amount", "fine_paid", "damage_notes"}

func (s *store) CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	var loan model.Loan
	err := s.get(ctx, "CreateLoan", &loan, qb.Insert(loansTableName).
		Columns("student_id", "book_copy_id", "book_id", "issued_by", "issued_date", "due_date", "status", "fine_amount").
		Values(l.StudentID, l.BookCopyID, l.BookID, l.IssuedBy, l.IssuedDate.UTC(), l.DueDate.UTC(), l.Status, l.FineAmount).
		Suffix(returning(loanColumns)))
	return loan, err
}

func (s *store) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	var loan model.Loan
	err := s.get(ctx, "GetLoan", &loan, qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}))
	return loan, err
}

func (s *store) GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error) {
	var loan model.Loan
	err := s.get(ctx, "GetLoanForUpdate", &loan, qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return loan, err
}

// GetActiveLoanByCopyForUpdate reports ErrNoActiveLoan when the copy is not checked out.
func (s *store) GetActiveLoanByCopyForUpdate(ctx context.Context, copyID int64) (model.Loan, error) {
	var loan model.Loan
	err := s.get(ctx, "GetActiveLoanByCopyForUpdate", &loan, qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"book_copy_id": copyID, "status": model.LoanStatusActive}).
		Suffix("FOR UPDATE"))
	if errors.Is(err, errs.ErrNotFound) {
		return model.Loan{}, errs.ErrNoActiveLoan
	}
	return loan, err
}

// UpdateLoan writes the closing fields of a loan.
func (s *store) UpdateLoan(ctx context.Context, l model.Loan) error {
	var returned interface{}
	if l.ReturnedDate != nil {
		returned = l.ReturnedDate.UTC()
	}
	return s.exec(ctx, "UpdateLoan", qb.Update(loansTableName).
		Set("status", l.Status).
		Set("returned_date", returned).
		Set("returned_by", l.ReturnedBy).
		Set("fine_amount", l.FineAmount.Round(2)).
		Set("fine_paid", l.FinePaid).
		Set("damage_notes", l.DamageNotes).
		Where(sq.Eq{"id": l.ID}))
}

func (s *store) MarkLoanFinePaid(ctx context.Context, loanID int64) error {
	return s.exec(ctx, "MarkLoanFinePaid", qb.Update(loansTableName).
		Set("fine_paid", true).
		Where(sq.Eq{"id": loanID}))
}

func (s *store) ListLoans(ctx context.Context, filter model.LoanFilter) (model.ListLoans, error) {
	q := qb.Select(loanColumns...).
		From(loansTableName).
		OrderBy("id desc")
	if filter.StudentID != 0 {
		q = q.Where(sq.Eq{"student_id": filter.StudentID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if limit, off, ok := offset(filter.Page, filter.Size); ok {
		q = q.Limit(limit).Offset(off)
	}

	loans := make([]model.Loan, 0)
	if err := s.list(ctx, "ListLoans", &loans, q); err != nil {
		return model.ListLoans{}, err
	}
	return model.ListLoans{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(loans),
		},
		Items: loans,
	}, nil
}

func (s *store) ListOverdueLoans(ctx context.Context, now time.Time) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	err := s.list(ctx, "ListOverdueLoans", &loans, qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"status": model.LoanStatusActive}).
		Where(sq.Lt{"due_date": now.UTC()}).
		OrderBy("due_date"))
	return loans, err
}
