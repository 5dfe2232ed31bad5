package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RegisterStudent creates the login and a pending student in one transaction.
func (s *Service) RegisterStudent(ctx context.Context, req model.RegisterStudentRequest) (model.Student, error) {
	var student model.Student
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		user, err := st.CreateUser(ctx, req.Email)
		if err != nil {
			return errors.Wrap(err, "create user")
		}
		student, err = st.CreateStudent(ctx, model.Student{
			UserID:        &user.ID,
			StudentNumber: req.StudentNumber,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Status:        model.StudentStatusPending,
		})
		return errors.Wrap(err, "create student")
	})
	if err != nil {
		return model.Student{}, err
	}
	return student, nil
}

func (s *Service) GetStudent(ctx context.Context, id int64) (model.Student, error) {
	return s.repo.GetStudent(ctx, id)
}

func (s *Service) ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error) {
	return s.repo.ListStudents(ctx, status)
}

// ApproveStudent approves a pending student, verifies the linked login and
// issues the first library card.
func (s *Service) ApproveStudent(ctx context.Context, id int64, approvedBy *int64) (model.Student, *model.LibraryCard, error) {
	now := s.now()
	var (
		student model.Student
		card    *model.LibraryCard
	)
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetStudentForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "lock student")
		}
		if student, err = domain.TransitionStudent(current, domain.ActionApprove, "", now); err != nil {
			return err
		}
		if err := st.UpdateStudent(ctx, student); err != nil {
			return errors.Wrap(err, "update student")
		}
		if student.UserID != nil {
			if err := st.ApproveUser(ctx, *student.UserID); err != nil {
				return errors.Wrap(err, "approve user")
			}
		}
		card, err = s.generateCard(ctx, st, student, approvedBy)
		return err
	})
	if err != nil {
		return model.Student{}, nil, err
	}

	events := []kafka.Event{kafka.NewEvent(kafka.EventStudentApproved, student.ID, now)}
	if card != nil {
		events = append(events, cardEvent(kafka.EventCardIssued, *card, now))
	}
	s.publish(ctx, events...)
	return student, card, nil
}

// RejectStudent rejects a pending student and deletes the linked login,
// so the person has to register again with a new account.
func (s *Service) RejectStudent(ctx context.Context, id int64, reason string) (model.Student, error) {
	now := s.now()
	var student model.Student
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetStudentForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "lock student")
		}
		if student, err = domain.TransitionStudent(current, domain.ActionReject, reason, now); err != nil {
			return err
		}
		userID := student.UserID
		student.UserID = nil
		if err := st.UpdateStudent(ctx, student); err != nil {
			return errors.Wrap(err, "update student")
		}
		if userID == nil {
			return nil
		}
		if err := st.DeleteUser(ctx, *userID); err != nil {
			return errors.Wrap(err, "delete user")
		}
		return nil
	})
	if err != nil {
		return model.Student{}, err
	}
	s.publish(ctx, kafka.NewEvent(kafka.EventStudentRejected, student.ID, now))
	s.log.Info("student rejected", zap.Int64("student", student.ID))
	return student, nil
}

func (s *Service) BlockStudent(ctx context.Context, id int64) (model.Student, error) {
	return s.toggleStudent(ctx, id, domain.ActionBlock, kafka.EventStudentBlocked)
}

func (s *Service) UnblockStudent(ctx context.Context, id int64) (model.Student, error) {
	return s.toggleStudent(ctx, id, domain.ActionUnblock, kafka.EventStudentUnblocked)
}

func (s *Service) toggleStudent(ctx context.Context, id int64, action domain.StudentAction, typ kafka.EventType) (model.Student, error) {
	now := s.now()
	var student model.Student
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetStudentForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "lock student")
		}
		if student, err = domain.TransitionStudent(current, action, "", now); err != nil {
			return err
		}
		return errors.Wrap(st.UpdateStudent(ctx, student), "update student")
	})
	if err != nil {
		return model.Student{}, err
	}
	s.publish(ctx, kafka.NewEvent(typ, student.ID, now))
	return student, nil
}
