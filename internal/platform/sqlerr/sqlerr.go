package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies a store failure independently of the driver.
type Code string

const (
	NotFound            Code = "not_found"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	RestrictViolation   Code = "restrict_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
	Unavailable         Code = "unavailable"
	Other               Code = "other"
)

// PostgreSQL SQLSTATE values.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgRestrictViolation   = "23001"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgConnectionClass     = "08"
	pgAdminShutdown       = "57P01"
	pgCannotConnectNow    = "57P03"
)

// Error is a typed repository failure carrying the table it happened on.
// Dependent names the referencing table of a blocked delete.
type Error struct {
	Code       Code
	Table      string
	Column     string
	Constraint string
	Detail     string
	Dependent  string
	err        error
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.Table, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Table, e.Code, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// ErrCode returns the Code of err, or Other when err is not an *Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return ErrCode(err) == NotFound
}

// NewNotFound builds the error returned when a statement matched no row.
func NewNotFound(table string) *Error {
	return &Error{Code: NotFound, Table: table, err: pgx.ErrNoRows}
}

// Wrap classifies err and attaches the table name. Nil stays nil and an
// already classified error is returned untouched.
func Wrap(table string, err error) error {
	if err == nil {
		return nil
	}
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return err
	}

	out := &Error{Code: Other, Table: table, err: err}

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		out.Code = mapCode(table, pgErr)
		out.Column = pgErr.ColumnName
		out.Constraint = pgErr.ConstraintName
		out.Detail = pgErr.Detail
		switch out.Code {
		case RestrictViolation:
			out.Dependent = pgErr.TableName
		case ForeignKeyViolation:
			if out.Column == "" {
				out.Column = foreignKeyColumn(pgErr)
			}
		}
	case errors.Is(err, pgx.ErrNoRows):
		out.Code = NotFound
	case isUnavailable(err):
		out.Code = Unavailable
	}
	return out
}

func mapCode(table string, pgErr *pgconn.PgError) Code {
	switch pgErr.Code {
	case pgUniqueViolation:
		return UniqueViolation
	case pgForeignKeyViolation:
		// The same SQLSTATE covers a dangling reference written to table and a
		// delete of table blocked by rows of another table. The server reports
		// the referencing table in both cases.
		if pgErr.TableName != "" && pgErr.TableName != table {
			return RestrictViolation
		}
		return ForeignKeyViolation
	case pgRestrictViolation:
		return RestrictViolation
	case pgNotNullViolation:
		return NotNullViolation
	case pgCheckViolation:
		return CheckViolation
	case pgAdminShutdown, pgCannotConnectNow:
		return Unavailable
	}
	if strings.HasPrefix(pgErr.Code, pgConnectionClass) {
		return Unavailable
	}
	return Other
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// foreignKeyColumn reads the column out of a default constraint name such
// as cidade_estado_id_fkey.
func foreignKeyColumn(pgErr *pgconn.PgError) string {
	name := pgErr.ConstraintName
	prefix := pgErr.TableName + "_"
	if pgErr.TableName == "" || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, "_fkey") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, prefix), "_fkey")
}
