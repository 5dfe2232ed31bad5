package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var fineColumns = []string{"id", "student_id", "loan_id", "type", "amount", "status", "description", "due_date", "paid_date", "waived_by", "waived_at", "waive_reason", "created_at"}

func (s *store) CreateFine(ctx context.Context, f model.Fine) (model.Fine, error) {
	var fine model.Fine
	err := s.get(ctx, "CreateFine", &fine, qb.Insert(finesTableName).
		Columns("student_id", "loan_id", "type", "amount", "status", "description", "due_date").
		Values(f.StudentID, f.LoanID, f.Type, f.Amount.Round(2), f.Status, f.Description, f.DueDate.UTC()).
		Suffix(returning(fineColumns)))
	return fine, err
}

func (s *store) GetFineForUpdate(ctx context.Context, id int64) (model.Fine, error) {
	var fine model.Fine
	err := s.get(ctx, "GetFineForUpdate", &fine, qb.Select(fineColumns...).
		From(finesTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return fine, err
}

// UpdateFine persists a status transition. The status guard keeps a
// settled fine from being overwritten.
func (s *store) UpdateFine(ctx context.Context, f model.Fine) error {
	return s.exec(ctx, "UpdateFine", qb.Update(finesTableName).
		Set("status", f.Status).
		Set("paid_date", f.PaidDate).
		Set("waived_by", f.WaivedBy).
		Set("waived_at", f.WaivedAt).
		Set("waive_reason", f.WaiveReason).
		Where(sq.Eq{"id": f.ID, "status": model.FineStatusPending}))
}

// ListPendingFinesForUpdate locks the loan's pending fines in id order.
func (s *store) ListPendingFinesForUpdate(ctx context.Context, loanID int64) ([]model.Fine, error) {
	fines := make([]model.Fine, 0)
	err := s.list(ctx, "ListPendingFinesForUpdate", &fines, qb.Select(fineColumns...).
		From(finesTableName).
		Where(sq.Eq{"loan_id": loanID, "status": model.FineStatusPending}).
		OrderBy("id").
		Suffix("FOR UPDATE"))
	return fines, err
}

func (s *store) ListFines(ctx context.Context, studentID int64) ([]model.Fine, error) {
	fines := make([]model.Fine, 0)
	err := s.list(ctx, "ListFines", &fines, qb.Select(fineColumns...).
		From(finesTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("id desc"))
	return fines, err
}
