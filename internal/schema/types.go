package schema

import (
	"builder-generator/internal/directive"
	"builder-generator/internal/typeexpr"
)

// File is a parsed schema file.
type File struct {
	Version string
	// Package is the Go package the builders are generated into.
	Package string
	Records []*Record
	// Source is the path the file was loaded from, if any.
	Source string
}

// Find returns the record called name, or nil.
func (f *File) Find(name string) *Record {
	for _, r := range f.Records {
		if r.Name == name {
			return r
		}
	}

	return nil
}

// Names returns the record names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Records))
	for _, r := range f.Records {
		names = append(names, r.Name)
	}

	return names
}

// Record is a record type as described by a front-end.
type Record struct {
	Name string
	// Package is the Go package name of the record.
	Package string
	// PkgPath is the import path, when the record comes from Go source.
	PkgPath string
	// Declared is true when the record type already exists as Go source;
	// otherwise the generator emits it.
	Declared bool
	Fields   []RawField
	// Positional marks records whose fields have no names.
	Positional bool
	// Variants lists variant names of sum-type-like records.
	Variants []string
	// Unsupported is a front-end specific reason the record cannot be used.
	Unsupported string
	Pos         string
}

// RawField is a field as written, before validation.
type RawField struct {
	Name string
	// Type is set by front-ends that read types structurally.
	Type *typeexpr.Expr
	// TypeText is parsed when Type is nil.
	TypeText string
	// TypeErr is set when the front-end could not read the type.
	TypeErr    error
	Directives []directive.Raw
	Pos        string
}

// FieldDescriptor is a validated field. Descriptors are created once per
// extraction and never modified afterwards.
type FieldDescriptor struct {
	Name       string
	Type       *typeexpr.Expr
	Directives []directive.Directive
	// Index is the declaration position.
	Index int
	Pos   string
}

// Each returns the field's each directive, if any.
func (fd FieldDescriptor) Each() (directive.Each, bool) {
	return directive.EachOf(fd.Directives)
}
