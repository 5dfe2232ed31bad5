package handler

import (
	"net/http"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/labstack/echo/v4"
)

// RegisterStudent godoc
// @Summary Register a student
// @Description Creates the login and a pending student awaiting approval.
// @Tags students
// @Accept json
// @Produce json
// @Param student body model.RegisterStudentRequest true "student"
// @Success 201 {object} model.Student
// @Failure 409 {object} echo.HTTPError
// @Router /students [post]
func (h *Handler) RegisterStudent(c echo.Context) error {
	var req model.RegisterStudentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	student, err := h.librarySvc.RegisterStudent(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, student)
}

func (h *Handler) GetStudents(c echo.Context) error {
	status := model.StudentStatus(c.QueryParam("status"))
	switch status {
	case "", model.StudentStatusPending, model.StudentStatusApproved,
		model.StudentStatusRejected, model.StudentStatusBlocked:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	students, err := h.librarySvc.ListStudents(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}

func (h *Handler) GetStudent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, err := h.librarySvc.GetStudent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, student)
}

// ApproveStudent godoc
// @Summary Approve a pending student
// @Description Approval also issues the student's first library card.
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} model.ApproveStudentResponse
// @Failure 409 {object} echo.HTTPError
// @Router /students/{id}/approve [post]
func (h *Handler) ApproveStudent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, card, err := h.librarySvc.ApproveStudent(c.Request().Context(), id, staff(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ApproveStudentResponse{Student: student, Card: card})
}

func (h *Handler) RejectStudent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.RejectStudentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	student, err := h.librarySvc.RejectStudent(c.Request().Context(), id, req.Reason)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, student)
}

func (h *Handler) BlockStudent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, err := h.librarySvc.BlockStudent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, student)
}

func (h *Handler) UnblockStudent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, err := h.librarySvc.UnblockStudent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, student)
}

func (h *Handler) GetNotifications(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.librarySvc.ListNotifications(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
