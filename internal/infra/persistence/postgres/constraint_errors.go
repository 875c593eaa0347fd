package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. GORM only translates
// driver errors when the dialector is configured for it, so the
// SQLSTATE text checks stay as a fallback for raw pgx errors.

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "violates foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23514") ||
		strings.Contains(msg, "violates check constraint")
}
