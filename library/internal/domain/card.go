package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

// CardNumber is LIB + 8-digit student id + generation padded to two digits.
// Generations from 100 on make the number one digit longer.
func CardNumber(studentID int64, generation int) string {
	return fmt.Sprintf("LIB%08d%02d", studentID, generation)
}

// NewCard builds the next card for an approved student. generation is the
// number of cards the student already holds plus one. The barcode carries a
// random suffix and is not reproducible.
func NewCard(student model.Student, generation int, issuedBy *int64, now time.Time, validityYears int) (model.LibraryCard, error) {
	if student.Status != model.StudentStatusApproved {
		return model.LibraryCard{}, errs.ErrStudentNotEligible
	}
	number := CardNumber(student.ID, generation)
	return model.LibraryCard{
		StudentID:  student.ID,
		CardNumber: number,
		Barcode:    fmt.Sprintf("%s%03d", number, rand.Intn(1000)), //nolint:gosec
		Status:     model.CardStatusActive,
		IssuedBy:   issuedBy,
		IssuedDate: now,
		ExpiryDate: now.AddDate(validityYears, 0, 0),
	}, nil
}

func MarkCardLost(c model.LibraryCard) (model.LibraryCard, error) {
	if c.Status != model.CardStatusActive {
		return model.LibraryCard{}, errs.ErrInvalidTransition
	}
	c.Status = model.CardStatusLost
	return c, nil
}

// DeactivateCard retires a card in use. Lost cards stay lost.
func DeactivateCard(c model.LibraryCard) (model.LibraryCard, error) {
	if c.Status != model.CardStatusActive && c.Status != model.CardStatusPendingReplacement {
		return model.LibraryCard{}, errs.ErrInvalidTransition
	}
	c.Status = model.CardStatusInactive
	return c, nil
}
