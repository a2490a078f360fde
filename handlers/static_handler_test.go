package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func serveStatic(t *testing.T, dir, urlPath, wildcard string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, urlPath, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues(wildcard)
	if err := NewStaticHandler(dir).Serve(c); err != nil {
		t.Fatalf("serve: %v", err)
	}
	return rec
}

func TestStaticFallbackServesIndex(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	rec := serveStatic(t, dir, "/some/client/route", "some/client/route")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "app") {
		t.Fatalf("expected index fallback, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestStaticMissingBuildDiagnostic(t *testing.T) {
	rec := serveStatic(t, t.TempDir(), "/", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 diagnostic page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "index.html") {
		t.Fatalf("expected diagnostic body, got %q", rec.Body.String())
	}
}

func TestStaticUnknownAPIRouteStaysJSON(t *testing.T) {
	rec := serveStatic(t, t.TempDir(), "/api/unknown", "api/unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown api path, got %d", rec.Code)
	}
}
