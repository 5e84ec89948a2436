// Package shape classifies field descriptors as Required, Optional or
// Repeated.
//
// Rules, in order:
//  1. optional(T) without an each directive is Optional with inner type T.
//  2. A field with an each directive is Repeated; its declared type must be
//     sequence(T), or optional(sequence(T)), and the inner type is T.
//  3. Anything else is Required with the declared type as-is.
//
// The directive wins over the type: optional(sequence(T)) with each is
// Repeated, never Optional.
package shape
