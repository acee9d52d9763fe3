package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthplan/healthplan/internal/platform/errs"
	"github.com/healthplan/healthplan/internal/platform/sqlerr"
)

// ErrorHandler is the echo.HTTPErrorHandler of the server. It renders every
// error as an errs.HTTPError body; unknown errors become a 500 without
// leaking their text.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		httpErr := toHTTPError(err)

		evt := logger.Warn()
		if httpErr.Status >= http.StatusInternalServerError {
			evt = logger.Error()
		}
		evt.Err(err).
			Str("request_id", GetRequestID(c)).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(httpErr.Status)
			return
		}
		_ = c.JSON(httpErr.Status, httpErr)
	}
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		message, ok := echoErr.Message.(string)
		if !ok || message == "" {
			message = http.StatusText(echoErr.Code)
		}
		if echoErr.Code == http.StatusNotFound {
			message = "Route not found"
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	// Repository errors that reached here without passing a handler.
	var sqlErr *sqlerr.Error
	if errors.As(err, &sqlErr) && errors.As(sqlerr.HandleError(sqlErr), &httpErr) {
		return httpErr
	}

	return errs.NewInternalServerError()
}
