package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgNumericOutOfRange   = "22003"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// Constraint names declared by the migrations
const (
	constraintAdminsEmail         = "uq_admins_email"
	constraintManagersEmail       = "uq_managers_email"
	constraintManagersManagerCode = "uq_managers_manager_code"
	constraintManagersArea        = "fk_managers_assigned_area"
	constraintServicesArea        = "fk_services_area"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// violatedConstraint returns the constraint name reported by PostgreSQL, if any.
func violatedConstraint(err error) string {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgCheckViolation
}

// isNumericOutOfRange reports a value that does not fit its NUMERIC column.
func isNumericOutOfRange(err error) bool {
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgNumericOutOfRange
}
