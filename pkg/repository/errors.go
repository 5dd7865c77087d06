package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraint marks writes rejected by a database constraint (column
// length, CHECK expression). The wrapped message carries the constraint
// detail for the caller's validation error.
var ErrConstraint = errors.New("constraint violation")

// SQLSTATE codes surfaced by pgx for constraint failures.
const (
	codeStringTooLong       = "22001"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a Postgres foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

// IsConstraintViolation reports whether err is a Postgres length or CHECK
// constraint violation.
func IsConstraintViolation(err error) bool {
	code := pgErrCode(err)
	return code == codeStringTooLong || code == codeCheckViolation
}

func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := pgErr.ConstraintName
		if detail == "" {
			detail = pgErr.Message
		}
		return fmt.Errorf("%w: %s", ErrConstraint, detail)
	}
	return fmt.Errorf("%w: %v", ErrConstraint, err)
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
