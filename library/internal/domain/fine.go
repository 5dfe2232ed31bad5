package domain

import (
	"fmt"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/shopspring/decimal"
)

// CalculateFine returns the overdue fine a loan has accrued at now.
// Only active loans past their due date accrue; every started day
// counts as a full day. The result is never negative.
func CalculateFine(loan model.Loan, now time.Time, dailyRate decimal.Decimal) decimal.Decimal {
	if loan.Status != model.LoanStatusActive || !loan.DueDate.Before(now) || !dailyRate.IsPositive() {
		return decimal.Zero
	}
	return dailyRate.Mul(decimal.NewFromInt(DaysOverdue(loan.DueDate, now))).Round(2)
}

// DaysOverdue is ceil((now - due) / 24h), or 0 when due is not in the past.
func DaysOverdue(due, now time.Time) int64 {
	late := now.Sub(due)
	if late <= 0 {
		return 0
	}
	days := int64(late / day)
	if late%day != 0 {
		days++
	}
	return days
}

func NewFine(studentID int64, loanID *int64, typ model.FineType, amount decimal.Decimal, description string, now time.Time) model.Fine {
	return model.Fine{
		StudentID:   studentID,
		LoanID:      loanID,
		Type:        typ,
		Amount:      amount.Round(2),
		Status:      model.FineStatusPending,
		Description: description,
		DueDate:     now,
	}
}

func overdueDescription(title string) string {
	return fmt.Sprintf("Overdue fine for %q", title)
}

// DamageFine builds a pending damage fine for a loan.
func DamageFine(loan model.Loan, title string, amount decimal.Decimal, notes string, now time.Time) (model.Fine, error) {
	if !amount.IsPositive() {
		return model.Fine{}, errs.ErrInvalidAmount
	}
	desc := fmt.Sprintf("Damage to %q", title)
	if notes != "" {
		desc += ": " + notes
	}
	loanID := loan.ID
	return NewFine(loan.StudentID, &loanID, model.FineTypeDamage, amount, desc, now), nil
}

// Fines leave pending exactly once and never come back.

func PayFine(f model.Fine, now time.Time) (model.Fine, error) {
	if f.Status != model.FineStatusPending {
		return model.Fine{}, errs.ErrInvalidTransition
	}
	f.Status = model.FineStatusPaid
	f.PaidDate = &now
	return f, nil
}

func WaiveFine(f model.Fine, waivedBy *int64, reason string, now time.Time) (model.Fine, error) {
	if f.Status != model.FineStatusPending {
		return model.Fine{}, errs.ErrInvalidTransition
	}
	f.Status = model.FineStatusWaived
	f.WaivedBy = waivedBy
	f.WaivedAt = &now
	f.WaiveReason = &reason
	return f, nil
}

func WriteOffFine(f model.Fine) (model.Fine, error) {
	if f.Status != model.FineStatusPending {
		return model.Fine{}, errs.ErrInvalidTransition
	}
	f.Status = model.FineStatusWriteOff
	return f, nil
}
