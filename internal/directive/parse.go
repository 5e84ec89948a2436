package directive

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"builder-generator/internal/common"
	"builder-generator/internal/match"
)

// Parse validates a raw directive: exactly one entry, key each, and a
// string value naming a valid identifier.
func Parse(raw Raw) (Directive, error) {
	if raw.Err != nil {
		return nil, newError("malformed attribute syntax: %v", raw.Err)
	}

	entries := raw.Entries
	if raw.Text != "" {
		var err error

		entries, err = parseText(raw)
		if err != nil {
			return nil, err
		}
	}

	if len(entries) != 1 {
		return nil, newError("want exactly one entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Key != KeyEach {
		e := newError("unknown key %q", entry.Key)
		e.Suggestions = match.Closest(entry.Key, []string{KeyEach}, 1)

		return nil, e
	}

	v := entry.Value
	if !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.String) {
		return nil, newError("each value must be a string literal")
	}

	name := v.AsString()
	if !common.IsValidIdent(name) {
		return nil, newError("each value %q is not a valid identifier", name)
	}

	return Each{Name: name}, nil
}

// ParseAll parses every raw directive of one field. A field carries at
// most one builder directive.
func ParseAll(field string, raws []Raw) ([]Directive, error) {
	if len(raws) == 0 {
		return nil, nil
	}

	if len(raws) > 1 {
		return nil, &Error{Field: field, Detail: "more than one builder directive"}
	}

	d, err := Parse(raws[0])
	if err != nil {
		if de, ok := err.(*Error); ok {
			de.Field = field
		}

		return nil, err
	}

	return []Directive{d}, nil
}

// parseText reads attribute syntax. Values are evaluated without variables
// or functions, so anything but a literal becomes unknown.
func parseText(raw Raw) ([]Entry, error) {
	filename := raw.Filename
	if filename == "" {
		filename = "directive"
	}

	file, diags := hclsyntax.ParseConfig([]byte(raw.Text), filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, newError("malformed attribute syntax: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, newError("malformed attribute syntax")
	}

	if len(body.Blocks) > 0 {
		return nil, newError("nested blocks are not allowed")
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}

	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	entries := make([]Entry, 0, len(attrs))
	for _, a := range attrs {
		v, vdiags := a.Expr.Value(nil)
		if vdiags.HasErrors() {
			v = cty.DynamicVal
		}

		entries = append(entries, Entry{Key: a.Name, Value: v})
	}

	return entries, nil
}
