package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var (
	bookColumns = []string{"id", "title", "author", "isbn", "category", "total_copies", "available_copies", "is_archived", "created_at"}
	copyColumns = []string{"id", "book_id", "copy_code", "barcode", "status", "created_at"}
)

func (s *store) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	q := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "category").
		Values(b.Title, b.Author, b.ISBN, b.Category).
		Suffix(returning(bookColumns))

	var book model.Book
	if err := s.get(ctx, "CreateBook", &book, q); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *store) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	err := s.get(ctx, "GetBook", &book, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}))
	return book, err
}

// GetBookForUpdate locks the book row. Every copy status change of the
// book goes through this lock, so recounts never interleave.
func (s *store) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	err := s.get(ctx, "GetBookForUpdate", &book, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return book, err
}

func (s *store) ListBooks(ctx context.Context, showArchived bool, page, size int) (model.ListBooks, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id")
	if !showArchived {
		q = q.Where(sq.Eq{"is_archived": false})
	}
	if limit, off, ok := offset(page, size); ok {
		q = q.Limit(limit).Offset(off)
	}

	books := make([]model.Book, 0)
	if err := s.list(ctx, "ListBooks", &books, q); err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (s *store) ArchiveBook(ctx context.Context, id int64) error {
	return s.exec(ctx, "ArchiveBook", qb.Update(booksTableName).
		Set("is_archived", true).
		Where(sq.Eq{"id": id}))
}

// RecountBook recomputes both counters from book_copies.
func (s *store) RecountBook(ctx context.Context, id int64) (model.Book, error) {
	q := qb.Update(booksTableName).
		Set("total_copies", sq.Expr("(select count(*) from book_copies where book_id = ?)", id)).
		Set("available_copies", sq.Expr("(select count(*) from book_copies where book_id = ? and status = ?)", id, model.CopyStatusAvailable)).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns))

	var book model.Book
	if err := s.get(ctx, "RecountBook", &book, q); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *store) CreateCopy(ctx context.Context, c model.BookCopy) (model.BookCopy, error) {
	q := qb.Insert(bookCopiesTableName).
		Columns("book_id", "copy_code", "barcode", "status").
		Values(c.BookID, c.CopyCode, c.Barcode, c.Status).
		Suffix(returning(copyColumns))

	var cp model.BookCopy
	if err := s.get(ctx, "CreateCopy", &cp, q); err != nil {
		return model.BookCopy{}, err
	}
	return cp, nil
}

func (s *store) GetCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	var cp model.BookCopy
	err := s.get(ctx, "GetCopy", &cp, qb.Select(copyColumns...).
		From(bookCopiesTableName).
		Where(sq.Eq{"id": id}))
	return cp, err
}

func (s *store) GetCopyForUpdate(ctx context.Context, id int64) (model.BookCopy, error) {
	var cp model.BookCopy
	err := s.get(ctx, "GetCopyForUpdate", &cp, qb.Select(copyColumns...).
		From(bookCopiesTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return cp, err
}

func (s *store) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	copies := make([]model.BookCopy, 0)
	err := s.list(ctx, "ListCopies", &copies, qb.Select(copyColumns...).
		From(bookCopiesTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("id"))
	return copies, err
}

func (s *store) UpdateCopyStatus(ctx context.Context, id int64, status model.CopyStatus) error {
	return s.exec(ctx, "UpdateCopyStatus", qb.Update(bookCopiesTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}))
}
