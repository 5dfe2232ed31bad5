package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, model.Book{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Category: req.Category,
	})
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, showArchived bool, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, showArchived, page, size)
}

func (s *Service) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListCopies(ctx, bookID)
}

func (s *Service) ArchiveBook(ctx context.Context, id int64) error {
	return s.repo.ArchiveBook(ctx, id)
}

// AddCopy registers a new available copy and recounts the book.
func (s *Service) AddCopy(ctx context.Context, bookID int64, req model.AddCopyRequest) (model.BookCopy, error) {
	barcode := req.Barcode
	if barcode == "" {
		barcode = uuid.NewString()
	}
	var cp model.BookCopy
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetBookForUpdate(ctx, bookID); err != nil {
			return errors.Wrap(err, "lock book")
		}
		var err error
		cp, err = st.CreateCopy(ctx, model.BookCopy{
			BookID:   bookID,
			CopyCode: req.CopyCode,
			Barcode:  barcode,
			Status:   model.CopyStatusAvailable,
		})
		if err != nil {
			return errors.Wrap(err, "create copy")
		}
		_, err = st.RecountBook(ctx, bookID)
		return errors.Wrap(err, "recount book")
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return cp, nil
}

// SetCopyStatus moves a copy that is not on loan between available, damaged and lost.
func (s *Service) SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) (model.BookCopy, error) {
	var cp model.BookCopy
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		current, err := st.GetCopy(ctx, copyID)
		if err != nil {
			return err
		}
		if _, err := st.GetBookForUpdate(ctx, current.BookID); err != nil {
			return errors.Wrap(err, "lock book")
		}
		if current, err = st.GetCopyForUpdate(ctx, copyID); err != nil {
			return errors.Wrap(err, "lock copy")
		}
		if cp, err = domain.ChangeCopyStatus(current, status); err != nil {
			return err
		}
		if err := st.UpdateCopyStatus(ctx, copyID, cp.Status); err != nil {
			return errors.Wrap(err, "update copy")
		}
		_, err = st.RecountBook(ctx, cp.BookID)
		return errors.Wrap(err, "recount book")
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return cp, nil
}
