package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

// -------- shared helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newJSONContext(e *echo.Echo, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, stdhttp.MethodGet, "/health", nil)
	if err := NewHandler().Health(c); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	body := decodeBody[map[string]any](t, rec)
	if body["status"] != "ok" {
		t.Errorf("status = %v", body["status"])
	}
}
