// Package interp builds records at run time from a BuilderPlan.
//
// A Factory holds the method table of one plan and creates Builders. A
// Builder accepts method calls with cty values, checking the method name
// and argument type before touching its state, and builds the record as a
// cty object. Validate holds the construction rules shared with generated
// code: required fields are checked in declaration order and the first
// absent one is reported as a *buildrt.MissingFieldError.
package interp
