package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	testReqID      = "0123456789abcdef0123456789abcdef"
	testCustomerID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func newIdempServer(t *testing.T) (*echo.Echo, *atomic.Int32) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var calls atomic.Int32
	e := echo.New()
	e.Use(Idempotency(rdb, 5*time.Minute))
	e.POST("/topups", func(c echo.Context) error {
		n := calls.Add(1)
		return c.JSON(http.StatusCreated, map[string]any{"call": n})
	})
	return e, &calls
}

func doPost(e *echo.Echo, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/topups", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func idempHeaders() map[string]string {
	return map[string]string{
		"Sp-Request-Id":  testReqID,
		"Sp-Request-At":  strconv.FormatInt(time.Now().Unix(), 10),
		"Sp-Customer-Id": testCustomerID,
	}
}

func TestIdempotency_MissingHeaders(t *testing.T) {
	e, calls := newIdempServer(t)

	cases := []struct {
		name string
		drop string
	}{
		{"no request id", "Sp-Request-Id"},
		{"no request at", "Sp-Request-At"},
		{"no customer id", "Sp-Customer-Id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := idempHeaders()
			delete(h, tc.drop)
			rec := doPost(e, `{"amount":50000}`, h)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
	if calls.Load() != 0 {
		t.Errorf("handler ran %d times, want 0", calls.Load())
	}
}

func TestIdempotency_RejectsBadFormats(t *testing.T) {
	e, _ := newIdempServer(t)

	h := idempHeaders()
	h["Sp-Request-Id"] = "not-valid"
	if rec := doPost(e, `{}`, h); rec.Code != http.StatusBadRequest {
		t.Errorf("bad request id: code = %d", rec.Code)
	}

	h = idempHeaders()
	h["Sp-Request-At"] = "2026-08-31T10:00:00" // no timezone
	if rec := doPost(e, `{}`, h); rec.Code != http.StatusBadRequest {
		t.Errorf("naive timestamp: code = %d", rec.Code)
	}

	h = idempHeaders()
	h["Sp-Request-At"] = strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	if rec := doPost(e, `{}`, h); rec.Code != http.StatusBadRequest {
		t.Errorf("skewed timestamp: code = %d", rec.Code)
	}

	h = idempHeaders()
	h["Sp-Customer-Id"] = "UPPERCASE-NOT-HEX"
	if rec := doPost(e, `{}`, h); rec.Code != http.StatusBadRequest {
		t.Errorf("bad customer id: code = %d", rec.Code)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, calls := newIdempServer(t)
	body := `{"amount":50000}`

	first := doPost(e, body, idempHeaders())
	if first.Code != http.StatusCreated {
		t.Fatalf("first: code = %d, body = %s", first.Code, first.Body.String())
	}

	second := doPost(e, body, idempHeaders())
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: code = %d, body = %s", second.Code, second.Body.String())
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replay body differs: %s vs %s", first.Body.String(), second.Body.String())
	}
	if calls.Load() != 1 {
		t.Errorf("handler ran %d times, want 1", calls.Load())
	}
}

func TestIdempotency_BodyMismatchConflicts(t *testing.T) {
	e, calls := newIdempServer(t)

	if rec := doPost(e, `{"amount":50000}`, idempHeaders()); rec.Code != http.StatusCreated {
		t.Fatalf("first: code = %d", rec.Code)
	}
	rec := doPost(e, `{"amount":999999}`, idempHeaders())
	if rec.Code != http.StatusConflict {
		t.Fatalf("mismatch: code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if calls.Load() != 1 {
		t.Errorf("handler ran %d times, want 1", calls.Load())
	}
}

func TestIdempotency_FreshIDsRunIndependently(t *testing.T) {
	e, calls := newIdempServer(t)

	for i := 0; i < 3; i++ {
		h := idempHeaders()
		h["Sp-Request-Id"] = fmt.Sprintf("%032x", i+1)
		if rec := doPost(e, `{"amount":50000}`, h); rec.Code != http.StatusCreated {
			t.Fatalf("call %d: code = %d", i, rec.Code)
		}
	}
	if calls.Load() != 3 {
		t.Errorf("handler ran %d times, want 3", calls.Load())
	}
}

func TestIdempotency_SkipsReads(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.Use(Idempotency(rdb, time.Minute))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// No idempotency headers at all; GET must pass through untouched.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
}
