// Package buildrt holds the runtime support shared by builders produced by
// builder-generator, both generated source and in-memory builders.
//
// Generated Build methods report the first absent required field in
// declaration order:
//
//	cmd, err := NewCommandBuilder().Arg("--verbose").Build()
//	if errors.Is(err, buildrt.ErrMissingField) {
//		// err.(*buildrt.MissingFieldError).Field == "Executable"
//	}
package buildrt
