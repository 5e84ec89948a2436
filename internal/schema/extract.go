package schema

import (
	"errors"
	"fmt"

	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/directive"
	"builder-generator/internal/typeexpr"
)

// Extract validates rec and returns its fields in declaration order.
// Directives are validated here so malformed ones surface before any
// shape is assigned. On error the descriptor slice is nil.
func Extract(rec *Record) ([]FieldDescriptor, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	switch {
	case !common.IsValidIdent(rec.Name):
		diags.AddError(diagnostic.CodeUnsupportedSchema,
			fmt.Sprintf("record name %q is not a valid identifier", rec.Name), rec.Name, "")
	case rec.Positional:
		diags.AddError(diagnostic.CodeUnsupportedSchema,
			"positional fields are not supported; declare named fields", rec.Name, "")
	case len(rec.Variants) > 0:
		diags.AddError(diagnostic.CodeUnsupportedSchema,
			fmt.Sprintf("variant schemas are not supported (variants: %v)", rec.Variants), rec.Name, "")
	case rec.Unsupported != "":
		diags.AddError(diagnostic.CodeUnsupportedSchema, rec.Unsupported, rec.Name, "")
	}

	if diags.HasErrors() {
		return nil, diags
	}

	seen := make(map[string]bool, len(rec.Fields))
	fields := make([]FieldDescriptor, 0, len(rec.Fields))

	for i, raw := range rec.Fields {
		fd, diag := extractField(rec.Name, i, raw, seen)
		if diag != nil {
			diags.Add(*diag)
			continue
		}

		fields = append(fields, fd)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return fields, diags
}

func extractField(record string, index int, raw RawField, seen map[string]bool) (FieldDescriptor, *diagnostic.Diagnostic) {
	fail := func(code, msg string, suggestions ...string) (FieldDescriptor, *diagnostic.Diagnostic) {
		return FieldDescriptor{}, &diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        code,
			Message:     msg,
			Record:      record,
			Field:       raw.Name,
			Pos:         raw.Pos,
			Suggestions: suggestions,
		}
	}

	switch {
	case raw.Name == "":
		return fail(diagnostic.CodeUnsupportedSchema, fmt.Sprintf("field #%d has no name", index+1))
	case !common.IsValidIdent(raw.Name):
		return fail(diagnostic.CodeUnsupportedSchema, fmt.Sprintf("field name %q is not a valid identifier", raw.Name))
	case seen[raw.Name]:
		return fail(diagnostic.CodeUnsupportedSchema, fmt.Sprintf("duplicate field %q", raw.Name))
	}

	seen[raw.Name] = true

	if raw.TypeErr != nil {
		return fail(diagnostic.CodeUnsupportedSchema, raw.TypeErr.Error())
	}

	typ := raw.Type
	if typ == nil {
		var err error

		typ, err = typeexpr.Parse(raw.TypeText)
		if errors.Is(err, typeexpr.ErrEmptyType) {
			return fail(diagnostic.CodeUnsupportedSchema, "field has no type")
		}

		if err != nil {
			return fail(diagnostic.CodeUnsupportedSchema, err.Error())
		}
	}

	ds, err := directive.ParseAll(raw.Name, raw.Directives)
	if err != nil {
		var de *directive.Error
		if errors.As(err, &de) {
			de.Field = ""
			return fail(diagnostic.CodeInvalidDirective, de.Error(), de.Suggestions...)
		}

		return fail(diagnostic.CodeInvalidDirective, err.Error())
	}

	return FieldDescriptor{
		Name:       raw.Name,
		Type:       typ,
		Directives: ds,
		Index:      index,
		Pos:        raw.Pos,
	}, nil
}
