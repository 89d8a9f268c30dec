package mediainfo

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("malformed mediainfo document")
	ErrMalformedField    = errors.New("malformed field")
)

// FieldError reports a recognised field whose text does not have the
// expected "<number> <unit>" shape.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrMalformedField
}
