package utmconv

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure in this package.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a coordinate or ellipsoid field that is outside
// the range the checked conversions accept.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s out of range: %g", e.Field, e.Value)
}

// Is makes errors.Is(err, ErrInvalidInput) true for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field string, value float64) error {
	return &InvalidInputError{Field: field, Value: value}
}
