package interp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMethod is returned for calls to methods the builder does not have.
	ErrUnknownMethod = errors.New("unknown builder method")
	// ErrArgumentType is returned for arguments that do not convert to the
	// method's parameter type.
	ErrArgumentType = errors.New("invalid argument")
)

// UnknownMethodError reports a call to a method the builder does not have.
type UnknownMethodError struct {
	Builder     string
	Method      string
	Suggestions []string
}

func (e *UnknownMethodError) Error() string {
	msg := fmt.Sprintf("%s has no method %q", e.Builder, e.Method)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

// Is makes errors.Is(err, ErrUnknownMethod) succeed.
func (e *UnknownMethodError) Is(target error) bool {
	return target == ErrUnknownMethod
}

// ArgumentError reports an argument rejected at the call boundary.
type ArgumentError struct {
	Method string
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrArgumentType, e.Method, e.Detail)
}

// Is makes errors.Is(err, ErrArgumentType) succeed.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgumentType
}
