// Package typeexpr describes type references structurally.
//
// A type expression is one of:
//   - Bare: a predeclared identifier (string, int, bool, ...)
//   - Named: a plain named type, optionally package qualified and
//     optionally instantiated with type arguments (time.Duration, Pair[K, V])
//   - Wrapper: a single-argument type application (optional(T), sequence(T))
//
// Go spellings are normalized while parsing: *T is optional(T) and []T is
// sequence(T). Shapes the tree does not model (maps, funcs, channels,
// arrays) are kept as Named with their literal spelling.
package typeexpr
