package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, showArchived bool, page, size int) (model.ListBooks, error)
	ArchiveBook(ctx context.Context, id int64) error
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
	AddCopy(ctx context.Context, bookID int64, req model.AddCopyRequest) (model.BookCopy, error)
	SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) (model.BookCopy, error)

	RegisterStudent(ctx context.Context, req model.RegisterStudentRequest) (model.Student, error)
	GetStudent(ctx context.Context, id int64) (model.Student, error)
	ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error)
	ApproveStudent(ctx context.Context, id int64, approvedBy *int64) (model.Student, *model.LibraryCard, error)
	RejectStudent(ctx context.Context, id int64, reason string) (model.Student, error)
	BlockStudent(ctx context.Context, id int64) (model.Student, error)
	UnblockStudent(ctx context.Context, id int64) (model.Student, error)

	IssueLoan(ctx context.Context, studentID, copyID int64, issuedBy *int64) (model.Loan, error)
	ReturnLoan(ctx context.Context, copyID int64, returnedBy *int64, damageNotes string) (model.Loan, error)
	MarkLoanLost(ctx context.Context, loanID int64, markedBy *int64) (model.Loan, error)
	CalculateFine(ctx context.Context, loanID int64) (decimal.Decimal, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, filter model.LoanFilter) (model.ListLoans, error)
	ListOverdueLoans(ctx context.Context) ([]model.Loan, error)

	WaiveFine(ctx context.Context, loanID int64, waivedBy *int64, reason string) (int64, error)
	PayFine(ctx context.Context, fineID int64) (model.Fine, error)
	WriteOffFine(ctx context.Context, fineID int64) (model.Fine, error)
	RecordDamageFine(ctx context.Context, loanID int64, amount decimal.Decimal, notes string) (model.Fine, error)
	ListFines(ctx context.Context, studentID int64) ([]model.Fine, error)

	GenerateCard(ctx context.Context, studentID int64, issuedBy *int64) (*model.LibraryCard, error)
	ReissueCard(ctx context.Context, studentID int64, issuedBy *int64) (*model.LibraryCard, error)
	MarkCardLost(ctx context.Context, cardID int64) (model.LibraryCard, error)
	ListCards(ctx context.Context, studentID int64) ([]model.LibraryCard, error)

	ListNotifications(ctx context.Context, studentID int64) ([]model.Notification, error)
}

var _ LibraryService = (*service.Service)(nil)
