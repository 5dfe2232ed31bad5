package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "available"
	CopyStatusIssued    CopyStatus = "issued"
	CopyStatusLost      CopyStatus = "lost"
	CopyStatusDamaged   CopyStatus = "damaged"
)

type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            string    `json:"isbn" db:"isbn"`
	Category        string    `json:"category" db:"category"`
	TotalCopies     int       `json:"totalCopies" db:"total_copies"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	IsArchived      bool      `json:"isArchived" db:"is_archived"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

// BookCopy is one physical instance of a Book.
type BookCopy struct {
	ID        int64      `json:"id" db:"id"`
	BookID    int64      `json:"bookId" db:"book_id"`
	CopyCode  string     `json:"copyCode" db:"copy_code"`
	Barcode   string     `json:"barcode" db:"barcode"`
	Status    CopyStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "pending"
	StudentStatusApproved StudentStatus = "approved"
	StudentStatusRejected StudentStatus = "rejected"
	StudentStatusBlocked  StudentStatus = "blocked"
)

type User struct {
	ID         int64     `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	IsApproved bool      `json:"isApproved" db:"is_approved"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Student struct {
	ID              int64         `json:"id" db:"id"`
	UserID          *int64        `json:"userId,omitempty" db:"user_id"`
	StudentNumber   string        `json:"studentNumber" db:"student_number"`
	FirstName       string        `json:"firstName" db:"first_name"`
	LastName        string        `json:"lastName" db:"last_name"`
	Email           string        `json:"email" db:"email"`
	Status          StudentStatus `json:"status" db:"status"`
	ApprovedAt      *time.Time    `json:"approvedAt,omitempty" db:"approved_at"`
	RejectedAt      *time.Time    `json:"rejectedAt,omitempty" db:"rejected_at"`
	RejectionReason *string       `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
}

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
	LoanStatusLost     LoanStatus = "lost"
	// LoanStatusOverdue is accepted by the schema but never written;
	// overdue is derived from an active loan's due date.
	LoanStatusOverdue LoanStatus = "overdue"
)

// Loan is one checkout/return cycle of a copy. BookID duplicates the
// copy's book and is written together with BookCopyID.
type Loan struct {
	ID           int64           `json:"id" db:"id"`
	StudentID    int64           `json:"studentId" db:"student_id"`
	BookCopyID   int64           `json:"bookCopyId" db:"book_copy_id"`
	BookID       int64           `json:"bookId" db:"book_id"`
	IssuedBy     *int64          `json:"issuedBy,omitempty" db:"issued_by"`
	ReturnedBy   *int64          `json:"returnedBy,omitempty" db:"returned_by"`
	IssuedDate   time.Time       `json:"issuedDate" db:"issued_date"`
	DueDate      time.Time       `json:"dueDate" db:"due_date"`
	ReturnedDate *time.Time      `json:"returnedDate,omitempty" db:"returned_date"`
	Status       LoanStatus      `json:"status" db:"status"`
	FineAmount   decimal.Decimal `json:"fineAmount" db:"fine_amount"`
	FinePaid     bool            `json:"finePaid" db:"fine_paid"`
	DamageNotes  *string         `json:"damageNotes,omitempty" db:"damage_notes"`
}

func (l Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && l.DueDate.Before(now)
}

type ListLoans struct {
	Paging `json:",inline"`
	Items  []Loan `json:"items"`
}

type LoanFilter struct {
	StudentID int64
	Status    LoanStatus
	Page      int
	Size      int
}

type FineType string

const (
	FineTypeOverdue  FineType = "overdue"
	FineTypeDamage   FineType = "damage"
	FineTypeLostBook FineType = "lost_book"
)

type FineStatus string

const (
	FineStatusPending  FineStatus = "pending"
	FineStatusPaid     FineStatus = "paid"
	FineStatusWaived   FineStatus = "waived"
	FineStatusWriteOff FineStatus = "write_off"
)

type Fine struct {
	ID          int64           `json:"id" db:"id"`
	StudentID   int64           `json:"studentId" db:"student_id"`
	LoanID      *int64          `json:"loanId,omitempty" db:"loan_id"`
	Type        FineType        `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Status      FineStatus      `json:"status" db:"status"`
	Description string          `json:"description" db:"description"`
	DueDate     time.Time       `json:"dueDate" db:"due_date"`
	PaidDate    *time.Time      `json:"paidDate,omitempty" db:"paid_date"`
	WaivedBy    *int64          `json:"waivedBy,omitempty" db:"waived_by"`
	WaivedAt    *time.Time      `json:"waivedAt,omitempty" db:"waived_at"`
	WaiveReason *string         `json:"waiveReason,omitempty" db:"waive_reason"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

type CardStatus string

const (
	CardStatusActive             CardStatus = "active"
	CardStatusInactive           CardStatus = "inactive"
	CardStatusLost               CardStatus = "lost"
	CardStatusPendingReplacement CardStatus = "pending_replacement"
)

type LibraryCard struct {
	ID         int64      `json:"id" db:"id"`
	StudentID  int64      `json:"studentId" db:"student_id"`
	CardNumber string     `json:"cardNumber" db:"card_number"`
	Barcode    string     `json:"barcode" db:"barcode"`
	Status     CardStatus `json:"status" db:"status"`
	IssuedBy   *int64     `json:"issuedBy,omitempty" db:"issued_by"`
	IssuedDate time.Time  `json:"issuedDate" db:"issued_date"`
	ExpiryDate time.Time  `json:"expiryDate" db:"expiry_date"`
}

type Notification struct {
	ID        int64      `json:"id" db:"id"`
	EventID   string     `json:"eventId" db:"event_id"`
	StudentID int64      `json:"studentId" db:"student_id"`
	Type      string     `json:"type" db:"type"`
	Message   string     `json:"message" db:"message"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ReadAt    *time.Time `json:"readAt,omitempty" db:"read_at"`
}
