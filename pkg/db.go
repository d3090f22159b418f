package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == "23505"
}

// IsInvalidTextRepresentationError reports malformed input for a typed column,
// e.g. a non-uuid string compared against a uuid column
func IsInvalidTextRepresentationError(err error) bool {
	return pgErrorCode(err) == "22P02"
}

// IsUndefinedTableError is returned when the schema was not bootstrapped
func IsUndefinedTableError(err error) bool {
	return pgErrorCode(err) == "42P01"
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
