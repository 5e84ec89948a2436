package buildrt

import (
	"errors"
	"fmt"
)

// ErrMissingField matches every *MissingFieldError via errors.Is.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports a required field that was never set before Build.
type MissingFieldError struct {
	// Record is the name of the record being built, if known.
	Record string
	// Field is the first missing field in declaration order.
	Field string
}

// MissingField returns a *MissingFieldError for field.
func MissingField(field string) error {
	return &MissingFieldError{Field: field}
}

// MissingRecordField returns a *MissingFieldError for field of record.
func MissingRecordField(record, field string) error {
	return &MissingFieldError{Record: record, Field: field}
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("%s: field %s has not been set", e.Record, e.Field)
	}

	return fmt.Sprintf("field %s has not been set", e.Field)
}

// Is makes errors.Is(err, ErrMissingField) succeed.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// FieldName extracts the missing field name from err, if err wraps a
// *MissingFieldError.
func FieldName(err error) (string, bool) {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return mf.Field, true
	}

	return "", false
}
