package model

import "github.com/shopspring/decimal"

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
	Category string `json:"category"`
}

type AddCopyRequest struct {
	CopyCode string `json:"copyCode" validate:"required"`
	Barcode  string `json:"barcode"`
}

type CopyStatusRequest struct {
	Status CopyStatus `json:"status" validate:"required,oneof=available damaged lost"`
}

type RegisterStudentRequest struct {
	StudentNumber string `json:"studentNumber" validate:"required"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

type RejectStudentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type IssueLoanRequest struct {
	StudentID int64 `json:"studentId" validate:"required,gt=0"`
	CopyID    int64 `json:"copyId" validate:"required,gt=0"`
}

type ReturnLoanRequest struct {
	DamageNotes string `json:"damageNotes"`
}

type WaiveFineRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type WaiveFineResponse struct {
	Waived int64 `json:"waived"`
}

type DamageFineRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

type CalculateFineResponse struct {
	LoanID int64           `json:"loanId"`
	Amount decimal.Decimal `json:"amount"`
}

type ApproveStudentResponse struct {
	Student Student      `json:"student"`
	Card    *LibraryCard `json:"card,omitempty"`
}
