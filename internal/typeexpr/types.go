package typeexpr

import (
	"strings"

	"builder-generator/internal/common"
)

// Recognized wrapper names.
const (
	WrapperOptional = "optional"
	WrapperSequence = "sequence"
)

// Kind classifies a type expression node.
type Kind int

const (
	KindUnknown Kind = iota
	KindBare         // predeclared identifier
	KindNamed        // plain named type
	KindWrapper      // single-argument type application
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBare:
		return "bare"
	case KindNamed:
		return "named"
	case KindWrapper:
		return "wrapper"
	default:
		return common.UnknownStr
	}
}

// Expr is a node of a type expression tree.
type Expr struct {
	Kind Kind
	// Pkg is the package qualifier as written (e.g. "time").
	Pkg string
	// PkgPath is the import path of Pkg when known (Go front-end only).
	PkgPath string
	// Name is the identifier, or the wrapper name for wrappers.
	Name string
	// Args holds type arguments; wrappers always have exactly one.
	Args []*Expr
	// Literal is the verbatim spelling of types the tree does not model.
	Literal string
	// Refs lists the qualified names mentioned by Literal.
	Refs []*Expr
}

var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true,
	"float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
}

// IsPredeclared reports whether name is a predeclared Go type identifier.
func IsPredeclared(name string) bool {
	return predeclared[name]
}

// Bare returns a predeclared type reference.
func Bare(name string) *Expr {
	return &Expr{Kind: KindBare, Name: name}
}

// Named returns a named type reference. pkg may be empty.
func Named(pkg, name string, args ...*Expr) *Expr {
	return &Expr{Kind: KindNamed, Pkg: pkg, Name: name, Args: args}
}

// Ident returns Bare for predeclared names and Named otherwise.
func Ident(name string) *Expr {
	if IsPredeclared(name) {
		return Bare(name)
	}

	return Named("", name)
}

// Opaque returns a Named reference that only carries its spelling. refs
// are the qualified names the spelling mentions.
func Opaque(literal string, refs ...*Expr) *Expr {
	return &Expr{Kind: KindNamed, Literal: literal, Refs: refs}
}

// Wrap returns a single-argument wrapper application.
func Wrap(name string, arg *Expr) *Expr {
	return &Expr{Kind: KindWrapper, Name: name, Args: []*Expr{arg}}
}

// Optional returns optional(arg).
func Optional(arg *Expr) *Expr {
	return Wrap(WrapperOptional, arg)
}

// Sequence returns sequence(arg).
func Sequence(arg *Expr) *Expr {
	return Wrap(WrapperSequence, arg)
}

// IsOpaque reports whether e only carries a literal spelling.
func (e *Expr) IsOpaque() bool {
	return e != nil && e.Literal != ""
}

// String returns the canonical schema spelling of e.
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}

	if e.Literal != "" {
		return e.Literal
	}

	var sb strings.Builder

	if e.Pkg != "" {
		sb.WriteString(e.Pkg)
		sb.WriteString(".")
	}

	sb.WriteString(e.Name)

	if len(e.Args) == 0 {
		return sb.String()
	}

	open, closing := "[", "]"
	if e.Kind == KindWrapper {
		open, closing = "(", ")"
	}

	sb.WriteString(open)

	for i, a := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(a.String())
	}

	sb.WriteString(closing)

	return sb.String()
}

// Equal reports structural equality. PkgPath is compared only when both
// sides carry one.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}

	if e.Kind != o.Kind || e.Name != o.Name || e.Pkg != o.Pkg || e.Literal != o.Literal {
		return false
	}

	if e.PkgPath != "" && o.PkgPath != "" && e.PkgPath != o.PkgPath {
		return false
	}

	if len(e.Args) != len(o.Args) {
		return false
	}

	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}
