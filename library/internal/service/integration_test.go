package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/library/migrations"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDSNEnv = "LIBRARY_TEST_DB_DSN"

// newDBService wires a Service to the database named by LIBRARY_TEST_DB_DSN.
// The returned clock setter moves the service's notion of now.
func newDBService(t *testing.T) (*Service, func(time.Time)) {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if testing.Short() || dsn == "" {
		t.Skipf("integration test: set %s and drop -short", testDSNEnv)
	}
	db, err := sqlx.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, postgres.Migrate(db, migrations.MigrationFiles))

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)

	var mu sync.Mutex
	clock := testNow
	svc := NewService(repo, nil, domain.DefaultPolicy(), zap.NewNop())
	svc.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}
	return svc, func(at time.Time) {
		mu.Lock()
		defer mu.Unlock()
		clock = at
	}
}

func seedCatalog(t *testing.T, svc *Service, copies int) (model.Book, []model.BookCopy) {
	t.Helper()
	ctx := context.Background()
	book, err := svc.CreateBook(ctx, model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", ISBN: uuid.NewString()})
	require.NoError(t, err)
	out := make([]model.BookCopy, 0, copies)
	for i := 0; i < copies; i++ {
		cp, err := svc.AddCopy(ctx, book.ID, model.AddCopyRequest{CopyCode: uuid.NewString()})
		require.NoError(t, err)
		out = append(out, cp)
	}
	return book, out
}

func seedApproved(t *testing.T, svc *Service) model.Student {
	t.Helper()
	ctx := context.Background()
	st, err := svc.RegisterStudent(ctx, model.RegisterStudentRequest{
		StudentNumber: uuid.NewString(),
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         uuid.NewString() + "@example.com",
	})
	require.NoError(t, err)
	st, card, err := svc.ApproveStudent(ctx, st.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, card)
	return st
}

func requireCounts(t *testing.T, svc *Service, bookID int64, total, available int) {
	t.Helper()
	book, err := svc.GetBook(context.Background(), bookID)
	require.NoError(t, err)
	require.Equal(t, total, book.TotalCopies, "total copies")
	require.Equal(t, available, book.AvailableCopies, "available copies")
}

func TestIntegration_LoanLifecycleCounts(t *testing.T) {
	svc, setNow := newDBService(t)
	ctx := context.Background()
	book, copies := seedCatalog(t, svc, 2)
	student := seedApproved(t, svc)
	requireCounts(t, svc, book.ID, 2, 2)

	loan, err := svc.IssueLoan(ctx, student.ID, copies[0].ID, nil)
	require.NoError(t, err)
	requireCounts(t, svc, book.ID, 2, 1)

	_, err = svc.IssueLoan(ctx, student.ID, copies[0].ID, nil)
	require.ErrorIs(t, err, errs.ErrCopyUnavailable)

	setNow(loan.DueDate.Add(5 * 24 * time.Hour))
	returned, err := svc.ReturnLoan(ctx, copies[0].ID, nil, "")
	require.NoError(t, err)
	require.Equal(t, model.LoanStatusReturned, returned.Status)
	require.Equal(t, "25", returned.FineAmount.String())
	requireCounts(t, svc, book.ID, 2, 2)

	_, err = svc.ReturnLoan(ctx, copies[0].ID, nil, "")
	require.ErrorIs(t, err, errs.ErrNoActiveLoan)

	setNow(testNow)
	second, err := svc.IssueLoan(ctx, student.ID, copies[1].ID, nil)
	require.NoError(t, err)
	requireCounts(t, svc, book.ID, 2, 1)

	lost, err := svc.MarkLoanLost(ctx, second.ID, nil)
	require.NoError(t, err)
	require.Equal(t, model.LoanStatusLost, lost.Status)
	requireCounts(t, svc, book.ID, 2, 1)

	fines, err := svc.ListFines(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, fines, 2)
}

func TestIntegration_WaiveFineTwice(t *testing.T) {
	svc, setNow := newDBService(t)
	ctx := context.Background()
	_, copies := seedCatalog(t, svc, 1)
	student := seedApproved(t, svc)
	staff := int64(1)

	loan, err := svc.IssueLoan(ctx, student.ID, copies[0].ID, nil)
	require.NoError(t, err)
	setNow(loan.DueDate.Add(3 * 24 * time.Hour))
	_, err = svc.ReturnLoan(ctx, copies[0].ID, nil, "")
	require.NoError(t, err)

	n, err := svc.WaiveFine(ctx, loan.ID, &staff, "first offence")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = svc.WaiveFine(ctx, loan.ID, &staff, "first offence")
	require.NoError(t, err)
	require.Zero(t, n)

	fines, err := svc.ListFines(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	require.Equal(t, model.FineStatusWaived, fines[0].Status)
	require.Equal(t, &staff, fines[0].WaivedBy)
	require.Equal(t, "first offence", *fines[0].WaiveReason)

	// the loan keeps the charge as history
	got, err := svc.GetLoan(ctx, loan.ID)
	require.NoError(t, err)
	require.Equal(t, "15", got.FineAmount.String())
}

func TestIntegration_ConcurrentIssueSameCopy(t *testing.T) {
	svc, _ := newDBService(t)
	ctx := context.Background()
	book, copies := seedCatalog(t, svc, 1)
	students := []model.Student{seedApproved(t, svc), seedApproved(t, svc)}

	var wg sync.WaitGroup
	results := make([]error, len(students))
	for i, st := range students {
		wg.Add(1)
		go func(i int, studentID int64) {
			defer wg.Done()
			_, results[i] = svc.IssueLoan(ctx, studentID, copies[0].ID, nil)
		}(i, st.ID)
	}
	wg.Wait()

	var ok, unavailable int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrCopyUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, unavailable)
	requireCounts(t, svc, book.ID, 1, 0)
}

func TestIntegration_ReissueKeepsLostCard(t *testing.T) {
	svc, _ := newDBService(t)
	ctx := context.Background()
	student := seedApproved(t, svc)

	cards, err := svc.ListCards(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	_, err = svc.MarkCardLost(ctx, cards[0].ID)
	require.NoError(t, err)

	card, err := svc.ReissueCard(ctx, student.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, card)

	cards, err = svc.ListCards(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, model.CardStatusLost, cards[0].Status)
	require.Equal(t, model.CardStatusActive, cards[1].Status)
	require.Equal(t, card.CardNumber, cards[1].CardNumber)
}
