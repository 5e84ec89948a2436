// Package app wires the front-ends, synthesis, code generation and the
// interpreter into the builder-generator commands.
package app
