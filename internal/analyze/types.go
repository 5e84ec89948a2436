package analyze

import (
	"builder-generator/internal/schema"
)

// TagKey is the struct tag key holding a field's directives.
const TagKey = "builder"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "builder-generator/examples/command"
	Name    string // e.g., "Command"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// PackageInfo holds the records found in a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory of the package sources
	// Records are the package's struct types in source order.
	Records []*schema.Record
}

// File returns the package as a schema file.
func (p *PackageInfo) File() *schema.File {
	return &schema.File{
		Package: p.Name,
		Records: p.Records,
		Source:  p.Dir,
	}
}

// Find returns the record called name, or nil.
func (p *PackageInfo) Find(name string) *schema.Record {
	for _, r := range p.Records {
		if r.Name == name {
			return r
		}
	}

	return nil
}
