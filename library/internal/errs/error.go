package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrStudentNotEligible = errors.New("student is not eligible to borrow")
	ErrCopyUnavailable    = errors.New("copy is not available")
	ErrNoActiveLoan       = errors.New("no active loan for copy")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidAmount      = errors.New("amount must be positive")
)
