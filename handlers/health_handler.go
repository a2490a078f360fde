package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Health answers /health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// SystemHandler backs the /api/test connectivity probe.
type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler { return &SystemHandler{db: db} }

// Test reports liveness plus whether the store actually answers a ping.
func (h *SystemHandler) Test(c echo.Context) error {
	connected := false
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			connected = sqlDB.PingContext(c.Request().Context()) == nil
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"database": connected,
	})
}
