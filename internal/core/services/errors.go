package services

import (
	"fmt"

	"natpark-backend/internal/core/domain"
)

// validationError wraps a field-level validation failure so callers can
// match it against domain.ErrValidation while keeping the field message.
func validationError(err error) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
}
