package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Store is the set of queries available both on the pool and inside a transaction.
type Store interface {
	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, showArchived bool, page, size int) (model.ListBooks, error)
	ArchiveBook(ctx context.Context, id int64) error
	RecountBook(ctx context.Context, id int64) (model.Book, error)

	CreateCopy(ctx context.Context, c model.BookCopy) (model.BookCopy, error)
	GetCopy(ctx context.Context, id int64) (model.BookCopy, error)
	GetCopyForUpdate(ctx context.Context, id int64) (model.BookCopy, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
	UpdateCopyStatus(ctx context.Context, id int64, status model.CopyStatus) error

	CreateUser(ctx context.Context, email string) (model.User, error)
	ApproveUser(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	CreateStudent(ctx context.Context, s model.Student) (model.Student, error)
	GetStudent(ctx context.Context, id int64) (model.Student, error)
	GetStudentForUpdate(ctx context.Context, id int64) (model.Student, error)
	ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error)
	UpdateStudent(ctx context.Context, s model.Student) error

	CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error)
	GetActiveLoanByCopyForUpdate(ctx context.Context, copyID int64) (model.Loan, error)
	UpdateLoan(ctx context.Context, l model.Loan) error
	MarkLoanFinePaid(ctx context.Context, loanID int64) error
	ListLoans(ctx context.Context, filter model.LoanFilter) (model.ListLoans, error)
	ListOverdueLoans(ctx context.Context, now time.Time) ([]model.Loan, error)

	CreateFine(ctx context.Context, f model.Fine) (model.Fine, error)
	GetFineForUpdate(ctx context.Context, id int64) (model.Fine, error)
	UpdateFine(ctx context.Context, f model.Fine) error
	ListPendingFinesForUpdate(ctx context.Context, loanID int64) ([]model.Fine, error)
	ListFines(ctx context.Context, studentID int64) ([]model.Fine, error)

	CreateCard(ctx context.Context, c model.LibraryCard) (model.LibraryCard, error)
	CountCards(ctx context.Context, studentID int64) (int, error)
	GetCardForUpdate(ctx context.Context, id int64) (model.LibraryCard, error)
	GetCurrentCardForUpdate(ctx context.Context, studentID int64) (model.LibraryCard, error)
	UpdateCardStatus(ctx context.Context, id int64, status model.CardStatus) error
	ListCards(ctx context.Context, studentID int64) ([]model.LibraryCard, error)

	CreateNotification(ctx context.Context, n model.Notification) (bool, error)
	ListNotifications(ctx context.Context, studentID int64) ([]model.Notification, error)
}

type Repository interface {
	Store
	// InTx runs fn inside one transaction; fn's error rolls it back.
	InTx(ctx context.Context, fn func(st Store) error) error
}

type store struct {
	db  sqlx.ExtContext
	log *zap.Logger
}

type repository struct {
	*store
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		store: &store{db: db, log: log.Named("repo")},
		db:    db,
	}, nil
}

func (r *repository) InTx(ctx context.Context, fn func(st Store) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "BeginTxx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&store{db: tx, log: r.store.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.store.log.Error("tx.Rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "tx.Commit")
}

const (
	usersTableName         = `users`
	studentsTableName      = `students`
	booksTableName         = `books`
	bookCopiesTableName    = `book_copies`
	loansTableName         = `loans`
	finesTableName         = `fines`
	cardsTableName         = `library_cards`
	notificationsTableName = `notifications`

	activeLoanIndex = `loans_one_active_per_copy`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

func offset(page, size int) (uint64, uint64, bool) {
	if page <= 0 || size <= 0 {
		return 0, 0, false
	}
	return uint64(size), uint64((page - 1) * size), true
}

// mapErr turns driver errors into the errs sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == activeLoanIndex {
				return errs.ErrCopyUnavailable
			}
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func (s *store) get(ctx context.Context, op string, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err := sqlx.GetContext(ctx, s.db, dest, query, args...); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		}
		return mapErr(err)
	}
	return nil
}

func (s *store) list(ctx context.Context, op string, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	s.log.Debug(op, zap.String("q", query), zap.Any("args", args))
	if err := sqlx.SelectContext(ctx, s.db, dest, query, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

// exec fails with ErrNotFound when no row was touched.
func (s *store) exec(ctx context.Context, op string, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
