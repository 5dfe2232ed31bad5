package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/labstack/echo/v4"
)

// IssueLoan godoc
// @Summary Issue a copy to a student
// @Tags loans
// @Accept json
// @Produce json
// @Param X-Staff-Id header int false "issuing staff user"
// @Param loan body model.IssueLoanRequest true "loan"
// @Success 201 {object} model.Loan
// @Failure 409 {object} echo.HTTPError "copy unavailable"
// @Failure 422 {object} echo.HTTPError "student not eligible"
// @Router /loans [post]
func (h *Handler) IssueLoan(c echo.Context) error {
	var req model.IssueLoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.IssueLoan(c.Request().Context(), req.StudentID, req.CopyID, staff(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// ReturnLoan godoc
// @Summary Return a copy
// @Description Closes the copy's active loan and records an overdue fine if one accrued.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path int true "copy id"
// @Param X-Staff-Id header int false "receiving staff user"
// @Param body body model.ReturnLoanRequest false "damage notes"
// @Success 200 {object} model.Loan
// @Failure 404 {object} echo.HTTPError "no active loan"
// @Router /copies/{id}/return [post]
func (h *Handler) ReturnLoan(c echo.Context) error {
	copyID, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.ReturnLoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.ReturnLoan(c.Request().Context(), copyID, staff(c), req.DamageNotes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) MarkLoanLost(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.MarkLoanLost(c.Request().Context(), id, staff(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoans(c echo.Context) error {
	var (
		filter model.LoanFilter
		err    error
	)
	if raw := c.QueryParam("studentId"); raw != "" {
		if filter.StudentID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "studentId is invalid")
		}
	}
	filter.Status = model.LoanStatus(c.QueryParam("status"))
	switch filter.Status {
	case "", model.LoanStatusActive, model.LoanStatusReturned, model.LoanStatusLost:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	if filter.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if filter.Size, err = queryInt(c, "size"); err != nil {
		return err
	}
	loans, err := h.librarySvc.ListLoans(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetOverdueLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListOverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// CalculateFine godoc
// @Summary Fine the loan would accrue if returned now
// @Tags loans
// @Produce json
// @Param id path int true "loan id"
// @Success 200 {object} model.CalculateFineResponse
// @Router /loans/{id}/fine [get]
func (h *Handler) CalculateFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	amount, err := h.librarySvc.CalculateFine(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.CalculateFineResponse{LoanID: id, Amount: amount})
}
