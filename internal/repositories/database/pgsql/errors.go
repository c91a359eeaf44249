package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
)

// wrapPgError wraps err with op, translating constraint violations into app errors.
func wrapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrValidation, pgErr.ConstraintName)
		case pgStringTooLong, pgNumericOutOfRange:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
