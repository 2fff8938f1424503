package repository

import (
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

func notFound(kind record.Kind) error {
	return errors.NewNotFoundError(kind.Label() + " not found")
}

// readError maps a lookup error, turning a missing row into a not-found error.
func readError(kind record.Kind, err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(kind)
	}
	return fmt.Errorf("failed to load %s: %w", kind.Label(), err)
}

// writeError maps an insert or update error, turning a duplicate key into a
// conflict error.
func writeError(kind record.Kind, op string, err error) error {
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError(kind.Label() + " already exists")
	}
	return fmt.Errorf("failed to %s %s: %w", op, kind.Label(), err)
}
