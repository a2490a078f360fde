package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gokulrbs/example-attendx/repository"
)

type AttendanceHandler struct {
	repo *repository.AttendanceRepo
}

func NewAttendanceHandler(repo *repository.AttendanceRepo) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

func (h *AttendanceHandler) List(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		return repoError(c, err, "Attendance record not found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Upsert records the day's status for an employee: 201 when the row is
// new, 200 when an existing row's status was replaced.
func (h *AttendanceHandler) Upsert(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	var req struct {
		EmployeeID string `json:"employeeId"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	row, created, err := h.repo.Upsert(c.Request().Context(), req.EmployeeID, req.Date, req.Status)
	if err != nil {
		return repoError(c, err, "Attendance record not found")
	}
	if created {
		return c.JSON(http.StatusCreated, row)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *AttendanceHandler) Delete(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	employeeID := c.Param("employeeId")
	date := c.Param("date")
	if err := h.repo.Delete(c.Request().Context(), employeeID, date); err != nil {
		return repoError(c, err, "Attendance record not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
