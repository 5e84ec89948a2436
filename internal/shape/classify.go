package shape

import (
	"errors"
	"fmt"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/schema"
	"builder-generator/internal/typeexpr"
)

// ErrInvalidEachTarget is returned for each directives on fields whose type
// is not a sequence.
var ErrInvalidEachTarget = errors.New("each directive requires a sequence type")

// Classify assigns a shape to fd.
func Classify(fd schema.FieldDescriptor) (Shape, error) {
	each, hasEach := fd.Each()

	if inner, ok := typeexpr.Match(fd.Type, typeexpr.WrapperOptional); ok && !hasEach {
		return Optional{Inner: inner}, nil
	}

	if hasEach {
		inner, ok := sequenceElem(fd.Type)
		if !ok {
			return nil, fmt.Errorf("%w: field %s has type %s", ErrInvalidEachTarget, fd.Name, fd.Type)
		}

		return Repeated{Inner: inner, Each: each.Name}, nil
	}

	return Required{Type: fd.Type}, nil
}

// sequenceElem finds T in sequence(T), looking through one optional layer.
func sequenceElem(t *typeexpr.Expr) (*typeexpr.Expr, bool) {
	if inner, ok := typeexpr.Match(t, typeexpr.WrapperSequence); ok {
		return inner, true
	}

	return typeexpr.MatchPath(t, typeexpr.WrapperOptional, typeexpr.WrapperSequence)
}

// ClassifyAll classifies every field of record. It returns exactly one
// shape per field, or nil and the diagnostics of every failing field.
func ClassifyAll(record string, fields []schema.FieldDescriptor) ([]Shape, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	shapes := make([]Shape, 0, len(fields))

	for _, fd := range fields {
		s, err := Classify(fd)
		if err != nil {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeInvalidEachTarget,
				Message:  fmt.Sprintf("each directive needs a sequence(T) field, got %s", fd.Type),
				Record:   record,
				Field:    fd.Name,
				Pos:      fd.Pos,
			})

			continue
		}

		shapes = append(shapes, s)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return shapes, diags
}
