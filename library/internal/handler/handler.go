package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter(accessLog logger.Log) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, md.XStaffIDHeader},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(accessLog)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.StaffContext,
	)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/:id", h.GetBook)
	api.DELETE("/books/:id", h.ArchiveBook)
	api.GET("/books/:id/copies", h.GetCopies)
	api.POST("/books/:id/copies", h.AddCopy)
	api.PATCH("/copies/:id/status", h.SetCopyStatus)
	api.POST("/copies/:id/return", h.ReturnLoan)

	api.POST("/students", h.RegisterStudent)
	api.GET("/students", h.GetStudents)
	api.GET("/students/:id", h.GetStudent)
	api.POST("/students/:id/approve", h.ApproveStudent)
	api.POST("/students/:id/reject", h.RejectStudent)
	api.POST("/students/:id/block", h.BlockStudent)
	api.POST("/students/:id/unblock", h.UnblockStudent)
	api.GET("/students/:id/fines", h.GetStudentFines)
	api.GET("/students/:id/cards", h.GetCards)
	api.POST("/students/:id/cards", h.GenerateCard)
	api.POST("/students/:id/cards/reissue", h.ReissueCard)
	api.GET("/students/:id/notifications", h.GetNotifications)

	api.POST("/loans", h.IssueLoan)
	api.GET("/loans", h.GetLoans)
	api.GET("/loans/overdue", h.GetOverdueLoans)
	api.GET("/loans/:id", h.GetLoan)
	api.GET("/loans/:id/fine", h.CalculateFine)
	api.POST("/loans/:id/lost", h.MarkLoanLost)
	api.POST("/loans/:id/waive", h.WaiveFine)
	api.POST("/loans/:id/damage", h.RecordDamageFine)

	api.POST("/fines/:id/pay", h.PayFine)
	api.POST("/fines/:id/write-off", h.WriteOffFine)

	api.POST("/cards/:id/lost", h.MarkCardLost)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service errors onto status codes. Unknown errors are 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNoActiveLoan):
		return echo.NewHTTPError(http.StatusNotFound, errors.Cause(err).Error())
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrCopyUnavailable),
		errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, errors.Cause(err).Error())
	case errors.Is(err, errs.ErrStudentNotEligible), errors.Is(err, errs.ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.Cause(err).Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}

func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func staff(c echo.Context) *int64 {
	return md.StaffFromContext(c.Request().Context())
}
