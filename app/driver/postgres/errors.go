package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rental-frontend/app/domain"
)

// PostgreSQL error codes the repositories translate
const (
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
	pgNotNullViolation       = "23502"
	pgCheckViolation         = "23514"
	pgStringDataRightTrunc   = "22001"
	pgInvalidTextRepresent   = "22P02"
	pgInvalidDatetimeFormat  = "22007"
	pgNumericValueOutOfRange = "22003"
)

// translateError maps driver errors onto domain errors; what describes the entity
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewAuthError(domain.ErrCodeNotFound, what+" not found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.NewAuthError(domain.ErrCodeConflict, what+" already exists", err)
		case pgForeignKeyViolation:
			return domain.NewAuthError(domain.ErrCodeNotFound, fmt.Sprintf("%s references a missing record", what), err)
		case pgNotNullViolation, pgCheckViolation, pgStringDataRightTrunc, pgInvalidTextRepresent,
			pgInvalidDatetimeFormat, pgNumericValueOutOfRange:
			message := pgErr.Message
			if pgErr.ColumnName != "" {
				message = fmt.Sprintf("%s: %s", pgErr.ColumnName, pgErr.Message)
			}
			return domain.NewAuthError(domain.ErrCodeValidation, fmt.Sprintf("invalid %s: %s", what, message), err)
		}
	}

	return fmt.Errorf("%s query failed: %w", what, err)
}

// isDataError reports whether the database refused the statement's data
// (SQLSTATE class 22 data exception or 23 integrity constraint violation)
func isDataError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
}
