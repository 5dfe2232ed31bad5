package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateBook godoc
// @Summary Add a title to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 201 {object} model.Book
// @Failure 409 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// GetBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Param page query int false "page"
// @Param size query int false "size"
// @Param showAll query bool false "include archived"
// @Success 200 {object} model.ListBooks
// @Router /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}
	var showAll bool
	if raw := c.QueryParam("showAll"); raw != "" {
		if showAll, err = strconv.ParseBool(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "showAll is invalid")
		}
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), showAll, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ArchiveBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.ArchiveBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetCopies(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	copies, err := h.librarySvc.ListCopies(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) AddCopy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.AddCopyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cp, err := h.librarySvc.AddCopy(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cp)
}

// SetCopyStatus godoc
// @Summary Change a copy's shelf status
// @Description Only available, damaged and lost can be set; issued copies are owned by their loan.
// @Tags copies
// @Accept json
// @Produce json
// @Param id path int true "copy id"
// @Param status body model.CopyStatusRequest true "status"
// @Success 200 {object} model.BookCopy
// @Failure 409 {object} echo.HTTPError
// @Router /copies/{id}/status [patch]
func (h *Handler) SetCopyStatus(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.CopyStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cp, err := h.librarySvc.SetCopyStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}
