package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
)

// Error — ошибка уровня домена, возвращается вызывающему как есть.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func is(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsValidation(err error) bool { return is(err, CodeValidation) }
func IsNotFound(err error) bool   { return is(err, CodeNotFound) }
func IsConflict(err error) bool   { return is(err, CodeConflict) }

// Postgres error codes, которые ловим на уровне домена.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// FromPg переводит нарушения ограничений БД в доменные ошибки.
// Уникальность -> конфликт, внешний ключ -> невалидная ссылка.
func FromPg(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return Conflictf("duplicate value for %s", pgErr.ConstraintName)
	case pgFKViolation:
		return Validationf("reference does not exist: %s", pgErr.ConstraintName)
	}
	return err
}
