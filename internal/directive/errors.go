package directive

import (
	"errors"
	"fmt"
)

// Usage is the expected directive form, quoted in every error.
const Usage = `expected builder(each = "...")`

// ErrInvalidDirective matches every *Error via errors.Is.
var ErrInvalidDirective = errors.New("invalid directive")

// Error describes a malformed directive.
type Error struct {
	// Field is set by callers that know which field carried the directive.
	Field       string
	Detail      string
	Suggestions []string
}

func newError(format string, args ...any) *Error {
	return &Error{Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := Usage
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Field != "" {
		msg = e.Field + ": " + msg
	}

	return msg
}

// Is makes errors.Is(err, ErrInvalidDirective) succeed.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidDirective
}
