package gen

import (
	"fmt"
	"sort"
	"strings"

	"builder-generator/internal/common"
	"builder-generator/internal/typeexpr"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// stdImports resolves qualifiers of schema types that carry no import path.
// Qualifiers not listed here are imported by their own name.
var stdImports = map[string]string{
	"big":      "math/big",
	"filepath": "path/filepath",
	"json":     "encoding/json",
	"netip":    "net/netip",
	"rand":     "math/rand/v2",
	"url":      "net/url",
	"utf8":     "unicode/utf8",
}

// typeFormatter spells type expressions as Go and collects the imports
// they need.
type typeFormatter struct {
	// contextPkgPath is the package being generated into; its types are
	// not qualified.
	contextPkgPath string
	// overrides maps qualifiers to import paths, taking precedence over stdImports.
	overrides map[string]string
	imports   map[string]importSpec
}

func newTypeFormatter(contextPkgPath string, overrides map[string]string) *typeFormatter {
	return &typeFormatter{
		contextPkgPath: contextPkgPath,
		overrides:      overrides,
		imports:        make(map[string]importSpec),
	}
}

// goType returns the Go spelling of e.
func (f *typeFormatter) goType(e *typeexpr.Expr) (string, error) {
	if e == nil {
		return common.InterfaceTypeStr, nil
	}

	if e.IsOpaque() {
		for _, ref := range e.Refs {
			f.qualify(ref)
		}

		return e.Literal, nil
	}

	switch e.Kind {
	case typeexpr.KindBare:
		return e.Name, nil

	case typeexpr.KindWrapper:
		if inner, ok := typeexpr.Match(e, typeexpr.WrapperOptional); ok {
			s, err := f.goType(inner)
			return "*" + s, err
		}

		if inner, ok := typeexpr.Match(e, typeexpr.WrapperSequence); ok {
			s, err := f.goType(inner)
			return "[]" + s, err
		}

		return "", fmt.Errorf("type %s has no Go spelling", e)

	case typeexpr.KindNamed:
		var sb strings.Builder

		sb.WriteString(f.qualify(e))
		sb.WriteString(e.Name)

		if len(e.Args) > 0 {
			sb.WriteString("[")

			for i, a := range e.Args {
				if i > 0 {
					sb.WriteString(", ")
				}

				s, err := f.goType(a)
				if err != nil {
					return "", err
				}

				sb.WriteString(s)
			}

			sb.WriteString("]")
		}

		return sb.String(), nil

	default:
		return "", fmt.Errorf("type %s has unknown kind", e)
	}
}

// qualify registers the import for a named type and returns its
// qualifier prefix ("time." or "").
func (f *typeFormatter) qualify(e *typeexpr.Expr) string {
	if e.Pkg == "" && e.PkgPath == "" {
		return ""
	}

	if e.PkgPath != "" && e.PkgPath == f.contextPkgPath {
		return ""
	}

	path := e.PkgPath
	if path == "" {
		path = f.importPath(e.Pkg)
	}

	alias := e.Pkg
	if alias == "" {
		alias = common.PkgAlias(path)
	}

	f.addImport(path, alias)

	return alias + "."
}

func (f *typeFormatter) importPath(qualifier string) string {
	if p, ok := f.overrides[qualifier]; ok {
		return p
	}

	if p, ok := stdImports[qualifier]; ok {
		return p
	}

	return qualifier
}

// addImport records an import. The alias is only written when it differs
// from the last path element.
func (f *typeFormatter) addImport(path, alias string) {
	if path == "" {
		return
	}

	if alias == common.PkgAlias(path) {
		alias = ""
	}

	f.imports[path] = importSpec{Alias: alias, Path: path}
}

// sortedImports returns the collected imports ordered by path.
func (f *typeFormatter) sortedImports() []importSpec {
	out := make([]importSpec, 0, len(f.imports))
	for _, imp := range f.imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
