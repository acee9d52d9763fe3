package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/errs"
)

// RequestTimeout puts a deadline on the request context. Queries running
// under it are cancelled by the driver, and when the deadline is what ended
// the handler the client gets a 504 instead of the handler's error.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Response().Committed {
				return errs.NewGatewayTimeoutError("Request processing exceeded the allowed time limit")
			}
			return err
		}
	}
}
