package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a rejected insert caused
// by a duplicate value in a column with a unique constraint.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// GORM's translated duplicate key error (requires TranslateError).
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fallback on the raw PostgreSQL unique_violation signature.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}
