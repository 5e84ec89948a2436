// Package analyze is the Go front-end: it loads packages and describes
// their struct types as schema records.
//
// It uses golang.org/x/tools/go/packages with go/types. Field types are
// converted to type expressions: *T becomes optional(T), []T becomes
// sequence(T), and named types keep their package path. Directives come
// from the `builder` struct tag, written in attribute syntax:
//
//	Args []string `builder:"each = \"Arg\""`
package analyze
