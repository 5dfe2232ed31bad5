package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/pkg/errors"
)

func cardEvent(typ kafka.EventType, c model.LibraryCard, now time.Time) kafka.Event {
	ev := kafka.NewEvent(typ, c.StudentID, now)
	ev.CardID = c.ID
	return ev
}

func (s *Service) generateCard(ctx context.Context, st repository.Store, student model.Student, issuedBy *int64) (*model.LibraryCard, error) {
	n, err := st.CountCards(ctx, student.ID)
	if err != nil {
		return nil, errors.Wrap(err, "count cards")
	}
	card, err := domain.NewCard(student, n+1, issuedBy, s.now(), s.policy.CardValidity)
	if err != nil {
		return nil, err
	}
	created, err := st.CreateCard(ctx, card)
	if err != nil {
		return nil, errors.Wrap(err, "create card")
	}
	return &created, nil
}

// GenerateCard issues a card for an approved student. A missing student
// yields a nil card and a nil error; callers check the card.
func (s *Service) GenerateCard(ctx context.Context, studentID int64, issuedBy *int64) (*model.LibraryCard, error) {
	var card *model.LibraryCard
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		student, err := st.GetStudentForUpdate(ctx, studentID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "lock student")
		}
		card, err = s.generateCard(ctx, st, student, issuedBy)
		return err
	})
	if err != nil || card == nil {
		return nil, err
	}
	s.publish(ctx, cardEvent(kafka.EventCardIssued, *card, s.now()))
	return card, nil
}

// ReissueCard deactivates the current card, if any, and generates a new one.
// Old cards are kept as history.
func (s *Service) ReissueCard(ctx context.Context, studentID int64, issuedBy *int64) (*model.LibraryCard, error) {
	var card *model.LibraryCard
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		student, err := st.GetStudentForUpdate(ctx, studentID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "lock student")
		}
		current, err := st.GetCurrentCardForUpdate(ctx, studentID)
		switch {
		case errors.Is(err, errs.ErrNotFound):
		case err != nil:
			return errors.Wrap(err, "lock current card")
		default:
			inactive, err := domain.DeactivateCard(current)
			if err != nil {
				return err
			}
			if err := st.UpdateCardStatus(ctx, inactive.ID, inactive.Status); err != nil {
				return errors.Wrap(err, "deactivate card")
			}
		}
		card, err = s.generateCard(ctx, st, student, issuedBy)
		return err
	})
	if err != nil || card == nil {
		return nil, err
	}
	s.publish(ctx, cardEvent(kafka.EventCardIssued, *card, s.now()))
	return card, nil
}

func (s *Service) MarkCardLost(ctx context.Context, cardID int64) (model.LibraryCard, error) {
	var card model.LibraryCard
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetCardForUpdate(ctx, cardID)
		if err != nil {
			return errors.Wrap(err, "lock card")
		}
		if card, err = domain.MarkCardLost(current); err != nil {
			return err
		}
		return errors.Wrap(st.UpdateCardStatus(ctx, card.ID, card.Status), "update card")
	})
	if err != nil {
		return model.LibraryCard{}, err
	}
	s.publish(ctx, cardEvent(kafka.EventCardLost, card, s.now()))
	return card, nil
}

func (s *Service) ListCards(ctx context.Context, studentID int64) ([]model.LibraryCard, error) {
	return s.repo.ListCards(ctx, studentID)
}
