package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError describes the first rule a value violated.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the violated validation tag, e.g. "required" or "url".
	Tag string
	// Reason is a human readable explanation, e.g. "is required".
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap makes every *FieldError match [ErrInvalidInput].
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
