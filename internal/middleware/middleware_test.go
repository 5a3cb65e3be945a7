package middleware

import (
	"errors"
	"myGreenReco/business/recommendation"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var traceID string
	h := RequestID()(func(c echo.Context) error {
		traceID = recommendation.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatal(err)
	}

	if traceID == "" {
		t.Fatal("expected a generated trace id in the request context")
	}
	if got := rec.Header().Get(HeaderRequestID); got != traceID {
		t.Errorf("response header = %q, want %q", got, traceID)
	}
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var traceID string
	h := RequestID()(func(c echo.Context) error {
		traceID = recommendation.TraceIDFromContext(c.Request().Context())
		return nil
	})
	_ = h(c)

	if traceID != "abc-123" {
		t.Errorf("trace id = %q, want abc-123", traceID)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, `"message":"Not Found"`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `"message":"boom"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

			ErrorHandler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
