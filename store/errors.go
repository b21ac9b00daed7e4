package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports that the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// wrap annotates err with op and folds missing-row and dangling-reference failures into ErrNotFound.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
