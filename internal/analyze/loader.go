package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"builder-generator/internal/ctxlog"
	"builder-generator/internal/directive"
	"builder-generator/internal/schema"
	"builder-generator/internal/typeexpr"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts records from their struct types.
type Analyzer struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the packages matching patterns and returns them in
// pattern order. Patterns are standard Go package patterns (e.g., "./command",
// "builder-generator/examples/command").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageInfo, error) {
	logger := ctxlog.FromContext(ctx)

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	infos := make([]*PackageInfo, 0, len(pkgs))

	for _, pkg := range pkgs {
		info := processPackage(pkg)
		logger.Debug("Loaded package.", "path", info.Path, "records", len(info.Records))
		infos = append(infos, info)
	}

	return infos, nil
}

// processPackage extracts records from a loaded package.
func processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	generated := generatedFiles(pkg)
	scope := pkg.Types.Scope()

	var named []*types.TypeName

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().Underlying().(*types.Struct); !ok {
			continue
		}

		// Generated files hold builders, not records.
		if generated[pkg.Fset.Position(typeName.Pos()).Filename] {
			continue
		}

		named = append(named, typeName)
	}

	// Scope names are sorted alphabetically; records follow the source.
	sort.SliceStable(named, func(i, j int) bool {
		return named[i].Pos() < named[j].Pos()
	})

	for _, typeName := range named {
		info.Records = append(info.Records, recordFromType(pkg.Fset, typeName))
	}

	return info
}

// generatedFiles returns the names of the package files carrying a
// "Code generated ... DO NOT EDIT." header.
func generatedFiles(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			out[pkg.Fset.Position(file.Package).Filename] = true
		}
	}

	return out
}

// recordFromType describes a named struct type as a record.
func recordFromType(fset *token.FileSet, typeName *types.TypeName) *schema.Record {
	pkg := typeName.Pkg()

	rec := &schema.Record{
		Name:     typeName.Name(),
		Package:  pkg.Name(),
		PkgPath:  pkg.Path(),
		Declared: true,
		Pos:      fset.Position(typeName.Pos()).String(),
	}

	named, _ := typeName.Type().(*types.Named)
	if named != nil && named.TypeParams().Len() > 0 {
		rec.Unsupported = "generic record types are not supported"
		return rec
	}

	st := typeName.Type().Underlying().(*types.Struct)
	conv := &typeConverter{pkg: pkg}

	for i := range st.NumFields() {
		field := st.Field(i)

		if field.Embedded() {
			rec.Unsupported = fmt.Sprintf("embedded field %s is not supported", field.Name())
			return rec
		}

		raw := schema.RawField{
			Name: field.Name(),
			Type: conv.convert(field.Type()),
			Pos:  fset.Position(field.Pos()).String(),
		}

		if text, ok := reflect.StructTag(st.Tag(i)).Lookup(TagKey); ok {
			d := directive.TextRaw(text)
			d.Filename = raw.Pos
			raw.Directives = []directive.Raw{d}
		}

		rec.Fields = append(rec.Fields, raw)
	}

	return rec
}

// typeConverter turns go/types types into type expressions relative to pkg.
type typeConverter struct {
	pkg *types.Package
}

func (c *typeConverter) convert(t types.Type) *typeexpr.Expr {
	if alias, ok := t.(*types.Alias); ok {
		if alias.Obj().Pkg() == nil {
			return typeexpr.Bare(alias.Obj().Name())
		}

		return c.convert(types.Unalias(alias))
	}

	switch tt := t.(type) {
	case *types.Basic:
		return typeexpr.Bare(tt.Name())

	case *types.Pointer:
		return typeexpr.Optional(c.convert(tt.Elem()))

	case *types.Slice:
		return typeexpr.Sequence(c.convert(tt.Elem()))

	case *types.Named:
		return c.named(tt)

	default:
		return c.opaque(t)
	}
}

func (c *typeConverter) named(t *types.Named) *typeexpr.Expr {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return typeexpr.Bare(obj.Name())
	}

	e := typeexpr.Named(obj.Pkg().Name(), obj.Name())
	e.PkgPath = obj.Pkg().Path()

	if obj.Pkg() == c.pkg {
		e.Pkg = ""
	}

	args := t.TypeArgs()
	for i := range args.Len() {
		e.Args = append(e.Args, c.convert(args.At(i)))
	}

	return e
}

// opaque keeps the Go spelling of types the tree does not model.
func (c *typeConverter) opaque(t types.Type) *typeexpr.Expr {
	qualifier := func(p *types.Package) string {
		if p == c.pkg {
			return ""
		}

		return p.Name()
	}

	var refs []*typeexpr.Expr

	seen := make(map[types.Type]bool)
	collectNamed(t, seen, func(n *types.Named) {
		if n.Obj().Pkg() != nil && n.Obj().Pkg() != c.pkg {
			refs = append(refs, c.named(n))
		}
	})

	return typeexpr.Opaque(types.TypeString(t, qualifier), refs...)
}

// collectNamed calls fn for every named type mentioned by t.
func collectNamed(t types.Type, seen map[types.Type]bool, fn func(*types.Named)) {
	if seen[t] {
		return
	}

	seen[t] = true

	switch tt := t.(type) {
	case *types.Alias:
		collectNamed(types.Unalias(tt), seen, fn)
	case *types.Named:
		fn(tt)

		args := tt.TypeArgs()
		for i := range args.Len() {
			collectNamed(args.At(i), seen, fn)
		}
	case *types.Pointer:
		collectNamed(tt.Elem(), seen, fn)
	case *types.Slice:
		collectNamed(tt.Elem(), seen, fn)
	case *types.Array:
		collectNamed(tt.Elem(), seen, fn)
	case *types.Chan:
		collectNamed(tt.Elem(), seen, fn)
	case *types.Map:
		collectNamed(tt.Key(), seen, fn)
		collectNamed(tt.Elem(), seen, fn)
	case *types.Struct:
		for i := range tt.NumFields() {
			collectNamed(tt.Field(i).Type(), seen, fn)
		}
	case *types.Signature:
		for _, tup := range []*types.Tuple{tt.Params(), tt.Results()} {
			for i := range tup.Len() {
				collectNamed(tup.At(i).Type(), seen, fn)
			}
		}
	}
}
