package typeexpr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"strings"
)

// ErrEmptyType is returned when parsing an empty type expression.
var ErrEmptyType = errors.New("empty type expression")

// ParseError describes a type expression that cannot be parsed.
type ParseError struct {
	Input string
	Msg   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid type expression %q: %s", e.Input, e.Msg)
}

// Parse parses a type expression.
//
// Accepted forms:
//   - "string", "Command", "time.Duration"
//   - "optional(T)", "sequence(T)" and any other "name(T)" wrapper
//   - "*T" (optional) and "[]T" (sequence)
//   - "Pair[K, V]" generic instantiations
//   - maps, funcs, channels and arrays, kept verbatim
func Parse(s string) (*Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyType
	}

	node, err := parser.ParseExpr(s)
	if err != nil {
		return nil, &ParseError{Input: s, Msg: err.Error()}
	}

	return fromAST(s, node)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return e
}

func fromAST(input string, node ast.Expr) (*Expr, error) {
	switch n := node.(type) {
	case *ast.Ident:
		return Ident(n.Name), nil

	case *ast.SelectorExpr:
		pkg, ok := n.X.(*ast.Ident)
		if !ok {
			return nil, &ParseError{Input: input, Msg: "qualified names must have the form pkg.Name"}
		}

		return Named(pkg.Name, n.Sel.Name), nil

	case *ast.ParenExpr:
		return fromAST(input, n.X)

	case *ast.StarExpr:
		inner, err := fromAST(input, n.X)
		if err != nil {
			return nil, err
		}

		return Optional(inner), nil

	case *ast.ArrayType:
		if n.Len != nil {
			return opaque(n), nil
		}

		inner, err := fromAST(input, n.Elt)
		if err != nil {
			return nil, err
		}

		return Sequence(inner), nil

	case *ast.CallExpr:
		return wrapperFromCall(input, n)

	case *ast.IndexExpr:
		return instantiate(input, n.X, []ast.Expr{n.Index})

	case *ast.IndexListExpr:
		return instantiate(input, n.X, n.Indices)

	case *ast.MapType, *ast.FuncType, *ast.ChanType, *ast.StructType, *ast.InterfaceType:
		return opaque(n), nil

	default:
		return nil, &ParseError{Input: input, Msg: fmt.Sprintf("unsupported syntax %T", node)}
	}
}

func wrapperFromCall(input string, call *ast.CallExpr) (*Expr, error) {
	if call.Ellipsis.IsValid() {
		return nil, &ParseError{Input: input, Msg: "variadic wrapper arguments are not allowed"}
	}

	if len(call.Args) != 1 {
		return nil, &ParseError{Input: input, Msg: fmt.Sprintf("wrapper takes exactly one argument, got %d", len(call.Args))}
	}

	head, err := fromAST(input, call.Fun)
	if err != nil {
		return nil, err
	}

	if head.Kind == KindWrapper || len(head.Args) > 0 || head.IsOpaque() {
		return nil, &ParseError{Input: input, Msg: "wrapper name must be an identifier"}
	}

	arg, err := fromAST(input, call.Args[0])
	if err != nil {
		return nil, err
	}

	w := Wrap(head.Name, arg)
	w.Pkg = head.Pkg

	return w, nil
}

func instantiate(input string, fun ast.Expr, indices []ast.Expr) (*Expr, error) {
	head, err := fromAST(input, fun)
	if err != nil {
		return nil, err
	}

	if head.Kind == KindWrapper || len(head.Args) > 0 || head.IsOpaque() {
		return nil, &ParseError{Input: input, Msg: "type arguments must follow a type name"}
	}

	named := Named(head.Pkg, head.Name)

	for _, idx := range indices {
		arg, err := fromAST(input, idx)
		if err != nil {
			return nil, err
		}

		named.Args = append(named.Args, arg)
	}

	return named, nil
}

// opaque keeps the spelling of node and records the pkg.Name selectors in it.
func opaque(node ast.Expr) *Expr {
	var refs []*Expr

	ast.Inspect(node, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if pkg, ok := sel.X.(*ast.Ident); ok {
			refs = append(refs, Named(pkg.Name, sel.Sel.Name))
		}

		return false
	})

	return Opaque(types.ExprString(node), refs...)
}
