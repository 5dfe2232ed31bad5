package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetCards(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	cards, err := h.librarySvc.ListCards(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cards)
}

// GenerateCard godoc
// @Summary Issue a library card
// @Tags cards
// @Produce json
// @Param id path int true "student id"
// @Success 201 {object} model.LibraryCard
// @Failure 404 {object} echo.HTTPError
// @Failure 422 {object} echo.HTTPError "student not approved"
// @Router /students/{id}/cards [post]
func (h *Handler) GenerateCard(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	card, err := h.librarySvc.GenerateCard(c.Request().Context(), id, staff(c))
	if err != nil {
		return httpError(err)
	}
	if card == nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) ReissueCard(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	card, err := h.librarySvc.ReissueCard(c.Request().Context(), id, staff(c))
	if err != nil {
		return httpError(err)
	}
	if card == nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) MarkCardLost(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	card, err := h.librarySvc.MarkCardLost(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}
