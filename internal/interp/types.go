package interp

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"

	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
	"builder-generator/internal/typeexpr"
)

var numericTypes = map[string]bool{
	"byte": true, "rune": true, "uintptr": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

// integerTypes maps Go integer type names to the Go type arguments are
// decoded into to check their range. uintptr is checked as uint64.
var integerTypes = map[string]reflect.Type{
	"byte":    reflect.TypeFor[uint8](),
	"rune":    reflect.TypeFor[int32](),
	"uintptr": reflect.TypeFor[uint64](),
	"int":     reflect.TypeFor[int](),
	"int8":    reflect.TypeFor[int8](),
	"int16":   reflect.TypeFor[int16](),
	"int32":   reflect.TypeFor[int32](),
	"int64":   reflect.TypeFor[int64](),
	"uint":    reflect.TypeFor[uint](),
	"uint8":   reflect.TypeFor[uint8](),
	"uint16":  reflect.TypeFor[uint16](),
	"uint32":  reflect.TypeFor[uint32](),
	"uint64":  reflect.TypeFor[uint64](),
}

// CtyType maps a type expression to the cty type values of it must
// convert to. Types without a cty counterpart map to cty.DynamicPseudoType.
func CtyType(e *typeexpr.Expr) cty.Type {
	if e == nil || e.IsOpaque() {
		return cty.DynamicPseudoType
	}

	switch e.Kind {
	case typeexpr.KindBare:
		switch {
		case e.Name == "string":
			return cty.String
		case e.Name == "bool":
			return cty.Bool
		case numericTypes[e.Name]:
			return cty.Number
		}
	case typeexpr.KindWrapper:
		if inner, ok := typeexpr.Match(e, typeexpr.WrapperOptional); ok {
			return CtyType(inner)
		}

		if inner, ok := typeexpr.Match(e, typeexpr.WrapperSequence); ok {
			return cty.List(CtyType(inner))
		}
	}

	return cty.DynamicPseudoType
}

// integerType returns the Go type used to range-check e, or nil when e
// is not a Go integer type.
func integerType(e *typeexpr.Expr) reflect.Type {
	if e == nil || e.Kind != typeexpr.KindBare {
		return nil
	}

	return integerTypes[e.Name]
}

// fieldSpec is the run-time view of one plan field.
type fieldSpec struct {
	name string
	kind shape.Kind
	elem cty.Type
	// integer is set for Go integer fields.
	integer reflect.Type
}

// methodSpec is one entry of the method table.
type methodSpec struct {
	name  string
	kind  plan.MethodKind
	field int
	param cty.Type
}

// sequenceVal returns the built value of a repeated field.
func (f *fieldSpec) sequenceVal(elems []cty.Value) cty.Value {
	if f.elem.HasDynamicTypes() {
		return cty.TupleVal(elems)
	}

	if len(elems) == 0 {
		return cty.ListValEmpty(f.elem)
	}

	return cty.ListVal(elems)
}

// valueType is the type of the field in the built object.
func (f *fieldSpec) valueType() cty.Type {
	if f.kind == shape.KindRepeated {
		if f.elem.HasDynamicTypes() {
			return cty.DynamicPseudoType
		}

		return cty.List(f.elem)
	}

	return f.elem
}
