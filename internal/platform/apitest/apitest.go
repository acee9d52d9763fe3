// Package apitest builds an echo server wired like the real one for
// handler tests that go through routing, binding and error rendering.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/healthplan/healthplan/internal/platform/errs"
	"github.com/healthplan/healthplan/internal/platform/middleware"
	"github.com/healthplan/healthplan/internal/platform/validation"
)

// NewServer returns an echo instance with the validator, error handler and
// trailing-slash handling of the server, and routes mounted by register.
func NewServer(register func(g *echo.Group)) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(zerolog.Nop())
	e.Pre(echomw.RemoveTrailingSlash())
	register(e.Group(""))
	return e
}

// Do sends a request with an optional JSON body.
func Do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the response body into out or fails the test.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// DecodeError unmarshals an error body.
func DecodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	Decode(t, rec, &body)
	return body
}

// AssertStatus fails the test when the recorded status differs.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
