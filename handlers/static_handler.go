package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// StaticHandler serves the frontend build. Unmatched GET paths fall back
// to the entry document so client-side routing works; a missing build
// yields a diagnostic page instead of a blank 404.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler { return &StaticHandler{dir: dir} }

const missingFrontendPage = `<!doctype html>
<html>
<head><title>Frontend not found</title></head>
<body>
<h1>Frontend build missing</h1>
<p>No <code>index.html</code> was found in the static directory.
The API under <code>/api</code> is still available.</p>
</body>
</html>`

func (h *StaticHandler) Serve(c echo.Context) error {
	// unknown API paths stay JSON errors, never the SPA shell
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	// path.Clean on a rooted path strips any ".." traversal
	p := path.Clean("/" + c.Param("*"))
	full := filepath.Join(h.dir, filepath.FromSlash(p))
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		return c.File(full)
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return c.HTML(http.StatusInternalServerError, missingFrontendPage)
	}
	return c.File(index)
}
