package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gokulrbs/example-attendx/repository"
)

type EmployeeHandler struct {
	repo *repository.EmployeeRepo
}

// NewEmployeeHandler takes a nil repo when the store is not configured;
// every endpoint then answers 503.
func NewEmployeeHandler(repo *repository.EmployeeRepo) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) List(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		return repoError(c, err, "Employee not found")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	var in repository.NewEmployee
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	e, err := h.repo.Create(c.Request().Context(), in)
	if err != nil {
		return repoError(c, err, "Employee not found")
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	var patch repository.EmployeePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	e, err := h.repo.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return repoError(c, err, "Employee not found")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return repoError(c, err, "Employee not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
