package shape

import (
	"builder-generator/internal/typeexpr"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the field shapes.
type Kind int

const (
	KindRequired Kind = iota
	KindOptional
	KindRepeated
)

// Shape is the classification of one field. The variants are Required,
// Optional and Repeated.
type Shape interface {
	Kind() Kind
	// ParamType is the type taken by the field's per-value operation.
	ParamType() *typeexpr.Expr
	isShape()
}

// Required fields must be set before build.
type Required struct {
	Type *typeexpr.Expr
}

// Optional fields resolve to no value when never set.
type Optional struct {
	Inner *typeexpr.Expr
}

// Repeated fields accumulate elements through the Each method.
type Repeated struct {
	Inner *typeexpr.Expr
	Each  string
}

func (Required) Kind() Kind { return KindRequired }
func (Optional) Kind() Kind { return KindOptional }
func (Repeated) Kind() Kind { return KindRepeated }

func (s Required) ParamType() *typeexpr.Expr { return s.Type }
func (s Optional) ParamType() *typeexpr.Expr { return s.Inner }
func (s Repeated) ParamType() *typeexpr.Expr { return s.Inner }

func (Required) isShape() {}
func (Optional) isShape() {}
func (Repeated) isShape() {}
