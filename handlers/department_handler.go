package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gokulrbs/example-attendx/repository"
)

type DepartmentHandler struct {
	repo *repository.DepartmentRepo
}

func NewDepartmentHandler(repo *repository.DepartmentRepo) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) List(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		return repoError(c, err, "Department not found")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	var in repository.NewDepartment
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	d, err := h.repo.Create(c.Request().Context(), in)
	if err != nil {
		return repoError(c, err, "Department not found")
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DepartmentHandler) Delete(c echo.Context) error {
	if h.repo == nil {
		return noStore(c)
	}
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return repoError(c, err, "Department not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
