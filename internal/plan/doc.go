// Package plan synthesizes a BuilderPlan from a record description.
//
// Synthesis pipeline:
//  1. Extract field descriptors (schema.Extract)
//  2. Classify each field (shape.ClassifyAll)
//  3. Resolve repeated-field methods and the collision rule (directive.Resolve)
//  4. Check method names across the whole builder
//
// The plan is complete or absent: any error diagnostic aborts synthesis of
// the record. Plans are consumed by code generation (package gen) and by the
// in-memory builder (package interp).
package plan
