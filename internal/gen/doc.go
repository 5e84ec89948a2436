// Package gen renders builder plans as Go source.
//
// Generation uses text/template + go/format. Each record gets one file,
// <record>_builder.go, holding:
//   - the record struct, when the record has no Go declaration yet
//   - the builder and its state struct
//   - the constructor, one method per builder operation, and Build
//
// Build checks required fields in declaration order and reports the first
// absent one with buildrt.MissingField. On success it resets the builder.
package gen
