// Package diagnostic provides structured synthesis-time errors, warnings
// and notes for the builder generator.
//
// Every diagnostic is attributable to a record and, when it concerns a
// single field, to that field. Any error diagnostic aborts synthesis of the
// record it belongs to.
//
// Codes:
//   - unsupported_schema: the record is not a flat list of named fields
//   - invalid_directive: a builder directive is malformed
//   - invalid_each_target: an each directive sits on a non-sequence field
//   - method_conflict: two fields would emit methods with the same name
//   - reserved_method: a generated method would shadow the build operation
package diagnostic
