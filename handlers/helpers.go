package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gokulrbs/example-attendx/repository"
)

// noStore short-circuits data endpoints when no connection string was
// configured at startup.
func noStore(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": "Database not configured",
	})
}

// repoError maps repository failures onto the HTTP taxonomy. notFoundMsg
// names the entity for the 404 body; everything unrecognized surfaces the
// raw store message with a 500.
func repoError(c echo.Context, err error, notFoundMsg string) error {
	var ve *repository.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, repository.ErrNoFields):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No fields provided to update"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundMsg})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
