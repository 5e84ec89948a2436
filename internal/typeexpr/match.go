package typeexpr

// Match reports whether e is exactly the wrapper named wrapper applied to
// one argument, and returns that argument.
func Match(e *Expr, wrapper string) (*Expr, bool) {
	if e == nil || e.Kind != KindWrapper || e.Pkg != "" || e.Name != wrapper {
		return nil, false
	}

	if len(e.Args) != 1 || e.Args[0] == nil {
		return nil, false
	}

	return e.Args[0], true
}

// MatchPath descends through the given wrappers in order and returns the
// innermost argument. All wrappers must match.
func MatchPath(e *Expr, wrappers ...string) (*Expr, bool) {
	cur := e
	for _, w := range wrappers {
		inner, ok := Match(cur, w)
		if !ok {
			return nil, false
		}

		cur = inner
	}

	return cur, true
}

// Walk calls fn for e and every nested argument, depth first.
func Walk(e *Expr, fn func(*Expr)) {
	if e == nil {
		return
	}

	fn(e)

	for _, a := range e.Args {
		Walk(a, fn)
	}
}
