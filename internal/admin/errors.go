package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"gorm.io/gorm"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// translateWrite turns driver level unique violations into a conflict so a
// racing duplicate still gets a clean answer.
func translateWrite(label string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: a %s with the same unique value already exists", apperr.ErrConflict, strings.ToLower(label))
	}
	return err
}
