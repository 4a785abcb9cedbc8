package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error returned from a Validate method.
var ErrValidation = errors.New("validation error")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, fmt.Sprintf(format, args...))
}

func required(field string) error {
	return invalid(field, "cannot be blank")
}

// Invalid reports a validation failure on field.
func Invalid(field string, format string, args ...any) error {
	return invalid(field, format, args...)
}

// Immutable reports an attempt to change a field that is fixed after creation.
func Immutable(field string) error {
	return invalid(field, "cannot be changed")
}
