package db

import (
	"context"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthplan/healthplan/internal/platform/errs"
)

type contextKey string

const DBConnKey contextKey = "db_conn"

var schemaPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// SessionMiddleware acquires one pooled connection per request and releases
// it when the handler returns, whether it succeeded, failed or panicked.
// Repositories pick the connection up through ConnFromContext.
func SessionMiddleware(pool *pgxpool.Pool, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("acquire database connection")
				return errs.NewServiceUnavailableError("Database unavailable")
			}
			defer conn.Release()

			c.SetRequest(c.Request().WithContext(WithConn(ctx, conn)))
			return next(c)
		}
	}
}

// WithConn returns a context carrying conn for repository calls.
func WithConn(ctx context.Context, conn *pgxpool.Conn) context.Context {
	return context.WithValue(ctx, DBConnKey, conn)
}

// ConnFromContext retrieves the request-scoped connection, or nil.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	if ctx == nil {
		return nil
	}
	conn, _ := ctx.Value(DBConnKey).(*pgxpool.Conn)
	return conn
}
