package plan

import (
	"builder-generator/internal/common"
	"builder-generator/internal/shape"
	"builder-generator/internal/typeexpr"
)

// SlotKind is the state a field starts in.
type SlotKind int

const (
	// SlotAbsent is an unset present-or-absent slot.
	SlotAbsent SlotKind = iota
	// SlotEmptySequence is an empty accumulator.
	SlotEmptySequence
)

// String returns a human-readable slot name.
func (k SlotKind) String() string {
	switch k {
	case SlotAbsent:
		return "absent"
	case SlotEmptySequence:
		return "empty-sequence"
	default:
		return common.UnknownStr
	}
}

// MethodKind describes what a builder method does to its field.
type MethodKind int

const (
	// MethodSet stores a required value, overwriting any previous one.
	MethodSet MethodKind = iota
	// MethodSetOptional stores an optional value as present.
	MethodSetOptional
	// MethodPush appends one element to a repeated field.
	MethodPush
	// MethodReplaceAll replaces the whole sequence of a repeated field.
	MethodReplaceAll
)

// String returns a human-readable method kind.
func (k MethodKind) String() string {
	switch k {
	case MethodSet:
		return "set"
	case MethodSetOptional:
		return "set-optional"
	case MethodPush:
		return "push"
	case MethodReplaceAll:
		return "replace-all"
	default:
		return common.UnknownStr
	}
}

// Method is one builder operation.
type Method struct {
	Name  string
	Kind  MethodKind
	Field string
	// FieldIndex is the declaration position of Field.
	FieldIndex int
	// Param is the argument type.
	Param *typeexpr.Expr
}

// Field is the synthesized part of the builder for one record field.
type Field struct {
	Name  string
	Index int
	// Declared is the record field type.
	Declared *typeexpr.Expr
	Shape    shape.Shape
	Slot     SlotKind
	Methods  []Method
	// Collision is true when a repeated field's accumulator took the field
	// name, so no bulk setter exists.
	Collision bool
	// OptionalSequence marks repeated fields declared optional(sequence(T));
	// the built record then holds a present sequence.
	OptionalSequence bool
	Pos              string
}

// Kind returns the field's shape kind.
func (f *Field) Kind() shape.Kind {
	return f.Shape.Kind()
}

// BuilderPlan is everything needed to emit or interpret a builder.
type BuilderPlan struct {
	Record  string
	Package string
	PkgPath string
	// Declared is true when the record type exists in Go source already.
	Declared        bool
	BuilderName     string
	ConstructorName string
	BuildMethod     string
	Fields          []Field
}

// Methods returns every method in declaration order.
func (p *BuilderPlan) Methods() []Method {
	var out []Method
	for _, f := range p.Fields {
		out = append(out, f.Methods...)
	}

	return out
}

// MethodNames returns the names of every method in declaration order.
func (p *BuilderPlan) MethodNames() []string {
	methods := p.Methods()

	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}

	return names
}

// Method looks up a method by name.
func (p *BuilderPlan) Method(name string) (Method, bool) {
	for _, f := range p.Fields {
		for _, m := range f.Methods {
			if m.Name == name {
				return m, true
			}
		}
	}

	return Method{}, false
}

// Field looks up a field by name.
func (p *BuilderPlan) Field(name string) (*Field, bool) {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i], true
		}
	}

	return nil, false
}

// RequiredFields returns the required fields in declaration order.
func (p *BuilderPlan) RequiredFields() []*Field {
	var out []*Field

	for i := range p.Fields {
		if p.Fields[i].Kind() == shape.KindRequired {
			out = append(out, &p.Fields[i])
		}
	}

	return out
}
