package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/handler"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-circulation/library/internal/handler/mocks"
)

type response struct {
	expectedCode int
	expectedBody string
}

func newEcho(t *testing.T) (*echo.Echo, *handler.Handler, *service_mocks.MockLibraryService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, h, svc
}

func serve(e *echo.Echo, method, target, body, staff string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if staff != "" {
		r.Header.Set(md.XStaffIDHeader, staff)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func staffID(id int64) *int64 { return &id }

func TestHandler_IssueLoan(t *testing.T) {
	t.Parallel()
	type input struct {
		body  string
		staff string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), int64(7), int64(11), staffID(3)).
					Return(model.Loan{ID: 100, StudentID: 7, BookCopyID: 11, BookID: 2, Status: model.LoanStatusActive}, nil)
			},
			input: input{body: `{"studentId":7,"copyId":11}`, staff: "3"},
			response: response{
				expectedCode: http.StatusCreated,
			},
		},
		{
			name: "err. copy unavailable",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), int64(7), int64(11), (*int64)(nil)).
					Return(model.Loan{}, errs.ErrCopyUnavailable)
			},
			input: input{body: `{"studentId":7,"copyId":11}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy is not available"}`,
			},
		},
		{
			name: "err. student not eligible",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), int64(7), int64(11), (*int64)(nil)).
					Return(model.Loan{}, errs.ErrStudentNotEligible)
			},
			input: input{body: `{"studentId":7,"copyId":11}`},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"student is not eligible to borrow"}`,
			},
		},
		{
			name:         "err. copy required",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"studentId":7}`},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. bad staff header",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"studentId":7,"copyId":11}`, staff: "abc"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid X-Staff-Id header"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), int64(7), int64(11), (*int64)(nil)).
					Return(model.Loan{}, errors.New("db internal"))
			},
			input: input{body: `{"studentId":7,"copyId":11}`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc := newEcho(t)
			e.POST("/loans", h.IssueLoan, md.StaffContext)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/loans", tt.input.body, tt.input.staff)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnLoan(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		target       string
		body         string
		response     response
	}{
		{
			name: "ok with damage notes",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnLoan(gomock.Any(), int64(11), (*int64)(nil), "torn cover").
					Return(model.Loan{ID: 100, Status: model.LoanStatusReturned}, nil)
			},
			target:   "/copies/11/return",
			body:     `{"damageNotes":"torn cover"}`,
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "ok empty body",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnLoan(gomock.Any(), int64(11), (*int64)(nil), "").
					Return(model.Loan{ID: 100, Status: model.LoanStatusReturned}, nil)
			},
			target:   "/copies/11/return",
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "err. no active loan",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnLoan(gomock.Any(), int64(11), (*int64)(nil), "").
					Return(model.Loan{}, errs.ErrNoActiveLoan)
			},
			target: "/copies/11/return",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"no active loan for copy"}`,
			},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			target:       "/copies/zero/return",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc := newEcho(t)
			e.POST("/copies/:id/return", h.ReturnLoan, md.StaffContext)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, tt.target, tt.body, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_WaiveFine(t *testing.T) {
	t.Parallel()
	e, h, svc := newEcho(t)
	e.POST("/loans/:id/waive", h.WaiveFine, md.StaffContext)

	gomock.InOrder(
		svc.EXPECT().WaiveFine(gomock.Any(), int64(100), staffID(3), "first offence").Return(int64(1), nil),
		svc.EXPECT().WaiveFine(gomock.Any(), int64(100), staffID(3), "first offence").Return(int64(0), nil),
	)

	w := serve(e, http.MethodPost, "/loans/100/waive", `{"reason":"first offence"}`, "3")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"waived":1}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodPost, "/loans/100/waive", `{"reason":"first offence"}`, "3")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"waived":0}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodPost, "/loans/100/waive", `{}`, "3")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CalculateFine(t *testing.T) {
	t.Parallel()
	e, h, svc := newEcho(t)
	e.GET("/loans/:id/fine", h.CalculateFine)

	svc.EXPECT().CalculateFine(gomock.Any(), int64(5)).Return(decimal.NewFromInt(25), nil)
	svc.EXPECT().CalculateFine(gomock.Any(), int64(6)).Return(decimal.Zero, errors.Wrap(errs.ErrNotFound, "get loan"))

	w := serve(e, http.MethodGet, "/loans/5/fine", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"loanId":5,"amount":"25"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodGet, "/loans/6/fine", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ApproveStudent(t *testing.T) {
	t.Parallel()
	e, h, svc := newEcho(t)
	e.POST("/students/:id/approve", h.ApproveStudent, md.StaffContext)

	svc.EXPECT().ApproveStudent(gomock.Any(), int64(7), staffID(1)).
		Return(model.Student{ID: 7, Status: model.StudentStatusApproved},
			&model.LibraryCard{ID: 9, StudentID: 7, CardNumber: "LIB0000000701"}, nil)
	svc.EXPECT().ApproveStudent(gomock.Any(), int64(8), staffID(1)).
		Return(model.Student{}, nil, errs.ErrInvalidTransition)

	w := serve(e, http.MethodPost, "/students/7/approve", "", "1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"cardNumber":"LIB0000000701"`)
	require.Contains(t, w.Body.String(), `"status":"approved"`)

	w = serve(e, http.MethodPost, "/students/8/approve", "", "1")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GenerateCard(t *testing.T) {
	t.Parallel()
	e, h, svc := newEcho(t)
	e.POST("/students/:id/cards", h.GenerateCard, md.StaffContext)

	svc.EXPECT().GenerateCard(gomock.Any(), int64(404), (*int64)(nil)).Return(nil, nil)
	svc.EXPECT().GenerateCard(gomock.Any(), int64(8), (*int64)(nil)).Return(nil, errs.ErrStudentNotEligible)

	w := serve(e, http.MethodPost, "/students/404/cards", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"student not found"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodPost, "/students/8/cards", "", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		page, size int
		showAll    bool
	}

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockLibraryService, in input)
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService, in input) {
				r.EXPECT().
					ListBooks(gomock.Any(), in.showAll, in.page, in.size).
					Return(model.ListBooks{
						Paging: model.Paging{Page: in.page, PageSize: in.size, TotalElements: 1},
						Items:  []model.Book{{ID: 1, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", TotalCopies: 2, AvailableCopies: 1}},
					}, nil)
			},
			input: input{page: 1, size: 10, showAll: true},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":1,"title":"Dune","author":"Frank Herbert","isbn":"9780441013593","category":"","totalCopies":2,"availableCopies":1,"isArchived":false,"createdAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService, in input) {
				r.EXPECT().
					ListBooks(gomock.Any(), in.showAll, in.page, in.size).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc := newEcho(t)
			e.GET("/books", h.GetBooks)

			tt.mockBehavior(svc, tt.input)
			w := serve(e, http.MethodGet,
				fmt.Sprintf("/books?page=%d&size=%d&showAll=%v", tt.input.page, tt.input.size, tt.input.showAll), "", "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	_, h, _ := newEcho(t)
	e := h.NewRouter(logger.Log{})
	w := serve(e, http.MethodGet, "/manage/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
