package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/healthplan/healthplan/internal/platform/errs"
)

var (
	uniqueConstraintPattern = regexp.MustCompile(`_([a-z0-9]+)_key$`)
	detailKeyPattern        = regexp.MustCompile(`Key \(([^)]+)\)=`)
)

// HandleError converts a repository error into the HTTP error returned to
// the client. Errors that are not *Error are returned unchanged.
func HandleError(err error) error {
	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		return err
	}

	entity := humanizeText(sqlErr.Table)
	if entity == "" {
		entity = "Record"
	}

	switch sqlErr.Code {
	case NotFound:
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", entity), generateErrorCode(sqlErr.Table, NotFound))

	case UniqueViolation:
		field := uniqueColumn(sqlErr)
		msg := fmt.Sprintf("A %s with this identifier already exists", entity)
		if field != "" {
			msg = fmt.Sprintf("A %s with this %s already exists", entity, humanizeText(field))
		}
		return errs.NewConflictError(msg, generateErrorCode(sqlErr.Table, UniqueViolation))

	case RestrictViolation:
		msg := fmt.Sprintf("%s is still referenced by other records", entity)
		if sqlErr.Dependent != "" {
			msg = fmt.Sprintf("%s is still referenced by %s", entity, humanizeText(sqlErr.Dependent))
		}
		return errs.NewConflictError(msg, generateErrorCode(sqlErr.Table, RestrictViolation))

	case ForeignKeyViolation:
		column := fallback(sqlErr.Column, detailColumn(sqlErr.Detail))
		var fields []errs.FieldError
		if column != "" {
			fields = []errs.FieldError{{Field: column, Error: "references a record that does not exist"}}
		}
		return errs.NewBadRequestError(
			fmt.Sprintf("The referenced %s does not exist", getEntityName(column)),
			generateErrorCode(sqlErr.Table, ForeignKeyViolation),
			fields,
		)

	case NotNullViolation:
		field := strings.ToLower(sqlErr.Column)
		return errs.NewBadRequestError(
			fmt.Sprintf("The %s is required", fallback(humanizeText(field), "field")),
			generateErrorCode(sqlErr.Table, NotNullViolation),
			[]errs.FieldError{{Field: field, Error: "is required"}},
		)

	case CheckViolation:
		return errs.NewBadRequestError(
			"One or more values do not meet required conditions",
			generateErrorCode(sqlErr.Table, CheckViolation),
			nil,
		)

	case Unavailable:
		return errs.NewServiceUnavailableError("Database unavailable")
	}

	return errs.NewInternalServerError()
}

// generateErrorCode builds codes such as ESTADO_NOT_FOUND or EMPRESA_ALREADY_EXISTS.
func generateErrorCode(table string, code Code) string {
	if table == "" {
		table = "record"
	}
	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case RestrictViolation:
		action = "IN_USE"
	case ForeignKeyViolation:
		action = "INVALID_REFERENCE"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}
	return strings.ToUpper(table) + "_" + action
}

func uniqueColumn(sqlErr *Error) string {
	if column := detailColumn(sqlErr.Detail); column != "" {
		return column
	}
	if m := uniqueConstraintPattern.FindStringSubmatch(sqlErr.Constraint); len(m) > 1 {
		return m[1]
	}
	return ""
}

// detailColumn extracts "estado_id" from `Key (estado_id)=(9) is not present ...`.
func detailColumn(detail string) string {
	m := detailKeyPattern.FindStringSubmatch(detail)
	if len(m) < 2 || strings.Contains(m[1], ",") {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func getEntityName(column string) string {
	if column == "" {
		return "record"
	}
	return humanizeText(strings.TrimSuffix(strings.ToLower(column), "_id"))
}

func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(text, "_", " "))
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
