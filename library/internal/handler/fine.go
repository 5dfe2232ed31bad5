package handler

import (
	"net/http"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/labstack/echo/v4"
)

// WaiveFine godoc
// @Summary Waive every pending fine of a loan
// @Description Repeating the call waives nothing and reports zero.
// @Tags fines
// @Accept json
// @Produce json
// @Param id path int true "loan id"
// @Param X-Staff-Id header int false "waiving staff user"
// @Param body body model.WaiveFineRequest true "reason"
// @Success 200 {object} model.WaiveFineResponse
// @Router /loans/{id}/waive [post]
func (h *Handler) WaiveFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.WaiveFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	n, err := h.librarySvc.WaiveFine(c.Request().Context(), id, staff(c), req.Reason)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.WaiveFineResponse{Waived: n})
}

func (h *Handler) RecordDamageFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.DamageFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	fine, err := h.librarySvc.RecordDamageFine(c.Request().Context(), id, req.Amount, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fine, err := h.librarySvc.PayFine(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) WriteOffFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fine, err := h.librarySvc.WriteOffFine(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) GetStudentFines(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fines, err := h.librarySvc.ListFines(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}
