package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/library-circulation/library/internal/repository/mocks"
)

var testNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	svc   *Service
	repo  *repo_mocks.MockRepository
	store *repo_mocks.MockStore
	pub   *recordingPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	store := repo_mocks.NewMockStore(c)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Store) error) error {
			return fn(store)
		}).AnyTimes()

	pub := &recordingPublisher{}
	svc := NewService(repo, pub, domain.DefaultPolicy(), zap.NewExample())
	svc.now = func() time.Time { return testNow }
	return fixture{svc: svc, repo: repo, store: store, pub: pub}
}

var (
	approved = model.Student{ID: 7, Status: model.StudentStatusApproved}
	book     = model.Book{ID: 3, Title: "Dune", TotalCopies: 1, AvailableCopies: 1}
	copy11   = model.BookCopy{ID: 11, BookID: 3, Status: model.CopyStatusAvailable}
)

func (f fixture) expectLockCopy(cp model.BookCopy) {
	f.store.EXPECT().GetCopy(gomock.Any(), cp.ID).Return(cp, nil)
	f.store.EXPECT().GetBookForUpdate(gomock.Any(), cp.BookID).Return(book, nil)
	f.store.EXPECT().GetCopyForUpdate(gomock.Any(), cp.ID).Return(cp, nil)
}

func TestService_IssueLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	staff := int64(1)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLockCopy(copy11)
		f.store.EXPECT().GetStudent(gomock.Any(), approved.ID).Return(approved, nil)
		f.store.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l model.Loan) (model.Loan, error) {
				require.Equal(t, testNow.Add(14*24*time.Hour), l.DueDate)
				require.Equal(t, model.LoanStatusActive, l.Status)
				require.Equal(t, &staff, l.IssuedBy)
				l.ID = 100
				return l, nil
			})
		f.store.EXPECT().UpdateCopyStatus(gomock.Any(), copy11.ID, model.CopyStatusIssued).Return(nil)
		f.store.EXPECT().RecountBook(gomock.Any(), book.ID).Return(model.Book{}, nil)

		loan, err := f.svc.IssueLoan(ctx, approved.ID, copy11.ID, &staff)
		require.NoError(t, err)
		require.Equal(t, int64(100), loan.ID)
		require.Equal(t, []kafka.EventType{kafka.EventLoanIssued}, f.pub.types())
	})

	t.Run("copy already issued", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		issued := copy11
		issued.Status = model.CopyStatusIssued
		f.expectLockCopy(issued)
		f.store.EXPECT().GetStudent(gomock.Any(), approved.ID).Return(approved, nil)

		_, err := f.svc.IssueLoan(ctx, approved.ID, copy11.ID, nil)
		require.ErrorIs(t, err, errs.ErrCopyUnavailable)
		require.Empty(t, f.pub.types())
	})

	t.Run("pending student", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLockCopy(copy11)
		f.store.EXPECT().GetStudent(gomock.Any(), int64(8)).
			Return(model.Student{ID: 8, Status: model.StudentStatusPending}, nil)

		_, err := f.svc.IssueLoan(ctx, 8, copy11.ID, nil)
		require.ErrorIs(t, err, errs.ErrStudentNotEligible)
	})

	t.Run("unknown copy", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetCopy(gomock.Any(), int64(99)).Return(model.BookCopy{}, errs.ErrNotFound)

		_, err := f.svc.IssueLoan(ctx, approved.ID, 99, nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("lost race on insert", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLockCopy(copy11)
		f.store.EXPECT().GetStudent(gomock.Any(), approved.ID).Return(approved, nil)
		f.store.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(model.Loan{}, errs.ErrCopyUnavailable)

		_, err := f.svc.IssueLoan(ctx, approved.ID, copy11.ID, nil)
		require.ErrorIs(t, err, errs.ErrCopyUnavailable)
	})
}

func TestService_ReturnLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	active := func(issued time.Time) model.Loan {
		return model.Loan{
			ID: 100, StudentID: approved.ID, BookCopyID: copy11.ID, BookID: book.ID,
			IssuedDate: issued, DueDate: issued.Add(14 * 24 * time.Hour),
			Status: model.LoanStatusActive, FineAmount: decimal.Zero,
		}
	}

	t.Run("same day no fine", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		issued := copy11
		issued.Status = model.CopyStatusIssued
		f.expectLockCopy(issued)
		f.store.EXPECT().GetActiveLoanByCopyForUpdate(gomock.Any(), copy11.ID).Return(active(testNow), nil)
		f.store.EXPECT().UpdateLoan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l model.Loan) error {
				require.Equal(t, model.LoanStatusReturned, l.Status)
				require.True(t, l.FineAmount.IsZero())
				return nil
			})
		f.store.EXPECT().UpdateCopyStatus(gomock.Any(), copy11.ID, model.CopyStatusAvailable).Return(nil)
		f.store.EXPECT().RecountBook(gomock.Any(), book.ID).Return(model.Book{}, nil)

		loan, err := f.svc.ReturnLoan(ctx, copy11.ID, nil, "")
		require.NoError(t, err)
		require.Equal(t, testNow, *loan.ReturnedDate)
		require.Equal(t, []kafka.EventType{kafka.EventLoanReturned}, f.pub.types())
	})

	t.Run("five days late", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		issued := copy11
		issued.Status = model.CopyStatusIssued
		f.expectLockCopy(issued)
		f.store.EXPECT().GetActiveLoanByCopyForUpdate(gomock.Any(), copy11.ID).
			Return(active(testNow.AddDate(0, 0, -19)), nil)
		f.store.EXPECT().UpdateLoan(gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fine model.Fine) (model.Fine, error) {
				require.Equal(t, "25", fine.Amount.String())
				require.Equal(t, model.FineTypeOverdue, fine.Type)
				require.Equal(t, `Overdue fine for "Dune"`, fine.Description)
				fine.ID = 500
				return fine, nil
			})
		f.store.EXPECT().UpdateCopyStatus(gomock.Any(), copy11.ID, model.CopyStatusAvailable).Return(nil)
		f.store.EXPECT().RecountBook(gomock.Any(), book.ID).Return(model.Book{}, nil)

		loan, err := f.svc.ReturnLoan(ctx, copy11.ID, nil, "torn cover")
		require.NoError(t, err)
		require.Equal(t, "25", loan.FineAmount.String())
		require.Equal(t, "torn cover", *loan.DamageNotes)
		require.Equal(t, []kafka.EventType{kafka.EventLoanReturned, kafka.EventFineCreated}, f.pub.types())
	})

	t.Run("no active loan", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLockCopy(copy11)
		f.store.EXPECT().GetActiveLoanByCopyForUpdate(gomock.Any(), copy11.ID).Return(model.Loan{}, errs.ErrNoActiveLoan)

		_, err := f.svc.ReturnLoan(ctx, copy11.ID, nil, "")
		require.ErrorIs(t, err, errs.ErrNoActiveLoan)
		require.Empty(t, f.pub.types())
	})

	t.Run("publish failure keeps the return", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.pub.err = errors.New("broker down")
		f.expectLockCopy(copy11)
		f.store.EXPECT().GetActiveLoanByCopyForUpdate(gomock.Any(), copy11.ID).Return(active(testNow), nil)
		f.store.EXPECT().UpdateLoan(gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().UpdateCopyStatus(gomock.Any(), copy11.ID, model.CopyStatusAvailable).Return(nil)
		f.store.EXPECT().RecountBook(gomock.Any(), book.ID).Return(model.Book{}, nil)

		_, err := f.svc.ReturnLoan(ctx, copy11.ID, nil, "")
		require.NoError(t, err)
	})
}

func TestService_MarkLoanLost(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	loan := model.Loan{ID: 100, StudentID: approved.ID, BookCopyID: copy11.ID, BookID: book.ID,
		DueDate: testNow, Status: model.LoanStatusActive}

	f.store.EXPECT().GetLoan(gomock.Any(), loan.ID).Return(loan, nil)
	f.store.EXPECT().GetBookForUpdate(gomock.Any(), book.ID).Return(book, nil)
	f.store.EXPECT().GetCopyForUpdate(gomock.Any(), copy11.ID).Return(copy11, nil)
	f.store.EXPECT().GetLoanForUpdate(gomock.Any(), loan.ID).Return(loan, nil)
	f.store.EXPECT().UpdateLoan(gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fine model.Fine) (model.Fine, error) {
			require.Equal(t, model.FineTypeLostBook, fine.Type)
			require.Equal(t, "500", fine.Amount.String())
			return fine, nil
		})
	f.store.EXPECT().UpdateCopyStatus(gomock.Any(), copy11.ID, model.CopyStatusLost).Return(nil)
	f.store.EXPECT().RecountBook(gomock.Any(), book.ID).Return(model.Book{}, nil)

	got, err := f.svc.MarkLoanLost(context.Background(), loan.ID, nil)
	require.NoError(t, err)
	require.Equal(t, model.LoanStatusLost, got.Status)
	require.Equal(t, []kafka.EventType{kafka.EventLoanLost, kafka.EventFineCreated}, f.pub.types())
}

func TestService_CalculateFine(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.repo.EXPECT().GetLoan(gomock.Any(), int64(1)).
		Return(model.Loan{ID: 1, Status: model.LoanStatusActive, DueDate: testNow.Add(-36 * time.Hour)}, nil)
	f.repo.EXPECT().GetLoan(gomock.Any(), int64(2)).
		Return(model.Loan{ID: 2, Status: model.LoanStatusReturned, DueDate: testNow.AddDate(0, 0, -10)}, nil)

	got, err := f.svc.CalculateFine(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "10", got.String())

	got, err = f.svc.CalculateFine(context.Background(), 2)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestService_WaiveFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loanID := int64(100)
	staff := int64(1)
	reason := "first offence"
	pending := model.Fine{ID: 1, StudentID: 7, LoanID: &loanID, Type: model.FineTypeOverdue,
		Amount: decimal.NewFromInt(25), Status: model.FineStatusPending}

	f := newFixture(t)
	f.store.EXPECT().GetLoan(gomock.Any(), loanID).Return(model.Loan{ID: loanID}, nil).Times(2)
	gomock.InOrder(
		f.store.EXPECT().ListPendingFinesForUpdate(gomock.Any(), loanID).Return([]model.Fine{pending}, nil),
		f.store.EXPECT().UpdateFine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got model.Fine) error {
				require.Equal(t, model.FineStatusWaived, got.Status)
				require.Equal(t, &staff, got.WaivedBy)
				require.Equal(t, testNow, *got.WaivedAt)
				require.Equal(t, reason, *got.WaiveReason)
				return nil
			}),
		f.store.EXPECT().ListPendingFinesForUpdate(gomock.Any(), loanID).Return([]model.Fine{}, nil),
	)

	n, err := f.svc.WaiveFine(ctx, loanID, &staff, reason)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = f.svc.WaiveFine(ctx, loanID, &staff, reason)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, []kafka.EventType{kafka.EventFineWaived}, f.pub.types())
	require.Equal(t, "25.00", f.pub.events[0].Amount)
}

func TestService_WaiveFine_UpdateFails(t *testing.T) {
	t.Parallel()
	loanID := int64(100)

	f := newFixture(t)
	f.store.EXPECT().GetLoan(gomock.Any(), loanID).Return(model.Loan{ID: loanID}, nil)
	f.store.EXPECT().ListPendingFinesForUpdate(gomock.Any(), loanID).Return([]model.Fine{
		{ID: 1, StudentID: 7, LoanID: &loanID, Status: model.FineStatusPending},
		{ID: 2, StudentID: 7, LoanID: &loanID, Status: model.FineStatusPending},
	}, nil)
	gomock.InOrder(
		f.store.EXPECT().UpdateFine(gomock.Any(), gomock.Any()).Return(nil),
		f.store.EXPECT().UpdateFine(gomock.Any(), gomock.Any()).Return(errors.New("conn reset")),
	)

	n, err := f.svc.WaiveFine(context.Background(), loanID, nil, "x")
	require.Error(t, err)
	require.Zero(t, n)
	require.Empty(t, f.pub.types())
}

func TestService_WaiveFine_UnknownLoan(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.store.EXPECT().GetLoan(gomock.Any(), int64(5)).Return(model.Loan{}, errs.ErrNotFound)

	_, err := f.svc.WaiveFine(context.Background(), 5, nil, "x")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_PayFine(t *testing.T) {
	t.Parallel()
	loanID := int64(100)

	t.Run("overdue flags loan", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetFineForUpdate(gomock.Any(), int64(1)).
			Return(model.Fine{ID: 1, LoanID: &loanID, Type: model.FineTypeOverdue, Status: model.FineStatusPending}, nil)
		f.store.EXPECT().UpdateFine(gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().MarkLoanFinePaid(gomock.Any(), loanID).Return(nil)

		fine, err := f.svc.PayFine(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, model.FineStatusPaid, fine.Status)
		require.Equal(t, testNow, *fine.PaidDate)
	})

	t.Run("already waived", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetFineForUpdate(gomock.Any(), int64(1)).
			Return(model.Fine{ID: 1, Status: model.FineStatusWaived}, nil)

		_, err := f.svc.PayFine(context.Background(), 1)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestService_RecordDamageFine(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.store.EXPECT().GetLoan(gomock.Any(), int64(100)).Return(model.Loan{ID: 100, StudentID: 7, BookID: book.ID}, nil).Times(2)
	f.store.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil).Times(2)
	f.store.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fine model.Fine) (model.Fine, error) {
			require.Equal(t, model.FineTypeDamage, fine.Type)
			return fine, nil
		})

	_, err := f.svc.RecordDamageFine(context.Background(), 100, decimal.NewFromInt(40), "water")
	require.NoError(t, err)

	_, err = f.svc.RecordDamageFine(context.Background(), 100, decimal.Zero, "")
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestService_ApproveStudent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := int64(42)
	staff := int64(1)

	t.Run("approve issues a card", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), int64(7)).
			Return(model.Student{ID: 7, UserID: &userID, Status: model.StudentStatusPending}, nil)
		f.store.EXPECT().UpdateStudent(gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().ApproveUser(gomock.Any(), userID).Return(nil)
		f.store.EXPECT().CountCards(gomock.Any(), int64(7)).Return(0, nil)
		f.store.EXPECT().CreateCard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c model.LibraryCard) (model.LibraryCard, error) {
				c.ID = 9
				return c, nil
			})

		student, card, err := f.svc.ApproveStudent(ctx, 7, &staff)
		require.NoError(t, err)
		require.Equal(t, model.StudentStatusApproved, student.Status)
		require.Equal(t, testNow, *student.ApprovedAt)
		require.NotNil(t, card)
		require.Equal(t, "LIB0000000701", card.CardNumber)
		require.Equal(t, testNow.AddDate(4, 0, 0), card.ExpiryDate)
		require.Equal(t, []kafka.EventType{kafka.EventStudentApproved, kafka.EventCardIssued}, f.pub.types())
	})

	t.Run("approve twice", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), int64(7)).Return(approved, nil)

		_, _, err := f.svc.ApproveStudent(ctx, 7, &staff)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.Empty(t, f.pub.types())
	})
}

func TestService_RejectStudent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	userID := int64(42)
	f.store.EXPECT().GetStudentForUpdate(gomock.Any(), int64(7)).
		Return(model.Student{ID: 7, UserID: &userID, Status: model.StudentStatusPending}, nil)
	f.store.EXPECT().UpdateStudent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s model.Student) error {
			require.Nil(t, s.UserID)
			require.Equal(t, "no enrolment", *s.RejectionReason)
			return nil
		})
	f.store.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)

	student, err := f.svc.RejectStudent(context.Background(), 7, "no enrolment")
	require.NoError(t, err)
	require.Equal(t, model.StudentStatusRejected, student.Status)
}

func TestService_GenerateCard(t *testing.T) {
	t.Parallel()

	t.Run("missing student", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), int64(404)).Return(model.Student{}, errs.ErrNotFound)

		card, err := f.svc.GenerateCard(context.Background(), 404, nil)
		require.NoError(t, err)
		require.Nil(t, card)
	})

	t.Run("pending student", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), int64(8)).
			Return(model.Student{ID: 8, Status: model.StudentStatusPending}, nil)
		f.store.EXPECT().CountCards(gomock.Any(), int64(8)).Return(0, nil)

		_, err := f.svc.GenerateCard(context.Background(), 8, nil)
		require.ErrorIs(t, err, errs.ErrStudentNotEligible)
	})
}

func TestService_ReissueCard(t *testing.T) {
	t.Parallel()
	create := func(_ context.Context, c model.LibraryCard) (model.LibraryCard, error) {
		return c, nil
	}

	t.Run("active card deactivated", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), approved.ID).Return(approved, nil)
		f.store.EXPECT().GetCurrentCardForUpdate(gomock.Any(), approved.ID).
			Return(model.LibraryCard{ID: 9, StudentID: approved.ID, Status: model.CardStatusActive}, nil)
		f.store.EXPECT().UpdateCardStatus(gomock.Any(), int64(9), model.CardStatusInactive).Return(nil)
		f.store.EXPECT().CountCards(gomock.Any(), approved.ID).Return(1, nil)
		f.store.EXPECT().CreateCard(gomock.Any(), gomock.Any()).DoAndReturn(create)

		card, err := f.svc.ReissueCard(context.Background(), approved.ID, nil)
		require.NoError(t, err)
		require.Equal(t, "LIB0000000702", card.CardNumber)
		require.Equal(t, model.CardStatusActive, card.Status)
	})

	t.Run("lost card keeps its status", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.store.EXPECT().GetStudentForUpdate(gomock.Any(), approved.ID).Return(approved, nil)
		f.store.EXPECT().GetCurrentCardForUpdate(gomock.Any(), approved.ID).
			Return(model.LibraryCard{}, errs.ErrNotFound)
		f.store.EXPECT().UpdateCardStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.store.EXPECT().CountCards(gomock.Any(), approved.ID).Return(2, nil)
		f.store.EXPECT().CreateCard(gomock.Any(), gomock.Any()).DoAndReturn(create)

		card, err := f.svc.ReissueCard(context.Background(), approved.ID, nil)
		require.NoError(t, err)
		require.Equal(t, "LIB0000000703", card.CardNumber)
	})
}

func TestService_RecordNotification(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ev := kafka.NewEvent(kafka.EventFineCreated, 7, testNow)
	ev.Amount = "25.00"

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (bool, error) {
			require.Equal(t, ev.ID, n.EventID)
			require.Equal(t, "A fine of 25.00 has been charged to your account.", n.Message)
			return true, nil
		})
	require.NoError(t, f.svc.RecordNotification(context.Background(), ev))

	// events without a student are dropped
	require.NoError(t, f.svc.RecordNotification(context.Background(), kafka.Event{Type: kafka.EventLoanIssued}))
}
