package schema

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"builder-generator/internal/directive"
	"builder-generator/internal/typeexpr"
)

type hclFile struct {
	Version string       `hcl:"version,optional"`
	Package string       `hcl:"package,optional"`
	Records []*hclRecord `hcl:"record,block"`
}

type hclRecord struct {
	Name      string         `hcl:"name,label"`
	Fields    []*hclField    `hcl:"field,block"`
	Variants  []*hclVariant  `hcl:"variant,block"`
	Types     *hcl.Attribute `hcl:"types,optional"`
	DeclRange hcl.Range      `hcl:",def_range"`
}

type hclVariant struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type hclField struct {
	Name      string         `hcl:"name,label"`
	Type      *hcl.Attribute `hcl:"type,optional"`
	Builders  []*hclBuilder  `hcl:"builder,block"`
	DeclRange hcl.Range      `hcl:",def_range"`
}

type hclBuilder struct {
	Body hcl.Body `hcl:",remain"`
}

// ParseHCL parses HCL data into a File. filename is used in positions.
func ParseHCL(data []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()

	hf, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema HCL %s: %w", filename, diags)
	}

	var parsed hclFile

	diags = gohcl.DecodeBody(hf.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema HCL %s: %w", filename, diags)
	}

	f := &File{Version: parsed.Version, Package: parsed.Package}

	for _, hr := range parsed.Records {
		rec := &Record{
			Name:       hr.Name,
			Positional: hr.Types != nil,
			Pos:        hr.DeclRange.String(),
		}

		for _, v := range hr.Variants {
			rec.Variants = append(rec.Variants, v.Name)
		}

		for _, hfld := range hr.Fields {
			rec.Fields = append(rec.Fields, hclRawField(hfld))
		}

		f.Records = append(f.Records, rec)
	}

	applyDefaults(f)

	return f, nil
}

func hclRawField(hf *hclField) RawField {
	raw := RawField{Name: hf.Name, Pos: hf.DeclRange.String()}

	if hf.Type != nil {
		typ, err := typeFromHCL(hf.Type.Expr)
		raw.Type, raw.TypeErr = typ, err
	}

	for _, b := range hf.Builders {
		raw.Directives = append(raw.Directives, hclDirective(b))
	}

	return raw
}

// hclDirective reads the attributes of a builder block. Values are
// evaluated without a context, so only literals produce known values.
func hclDirective(b *hclBuilder) directive.Raw {
	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return directive.Raw{Err: diags}
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		sorted = append(sorted, a)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	entries := make([]directive.Entry, 0, len(sorted))
	for _, a := range sorted {
		v, vdiags := a.Expr.Value(nil)
		if vdiags.HasErrors() {
			v = cty.DynamicVal
		}

		entries = append(entries, directive.Entry{Key: a.Name, Value: v})
	}

	return directive.EntriesRaw(entries...)
}

// typeFromHCL converts a type written as an HCL expression. The expression
// is read structurally, never evaluated: string, pkg.Name, wrapper(T), or a
// quoted Go type spelling.
func typeFromHCL(expr hcl.Expression) (*typeexpr.Expr, error) {
	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		switch len(e.Traversal) {
		case 1:
			return typeexpr.Ident(e.Traversal.RootName()), nil
		case 2:
			attr, ok := e.Traversal[1].(hcl.TraverseAttr)
			if !ok {
				return nil, fmt.Errorf("%s: invalid qualified type name", e.SrcRange)
			}

			return typeexpr.Named(e.Traversal.RootName(), attr.Name), nil
		default:
			return nil, fmt.Errorf("%s: type names have at most one qualifier", e.SrcRange)
		}

	case *hclsyntax.FunctionCallExpr:
		if len(e.Args) != 1 || e.ExpandFinal {
			return nil, fmt.Errorf("%s: wrapper %s takes exactly one argument, got %d", e.NameRange, e.Name, len(e.Args))
		}

		inner, err := typeFromHCL(e.Args[0])
		if err != nil {
			return nil, err
		}

		return typeexpr.Wrap(e.Name, inner), nil

	case *hclsyntax.TemplateExpr:
		v, diags := e.Value(nil)
		if diags.HasErrors() || !v.Type().Equals(cty.String) || v.IsNull() {
			return nil, fmt.Errorf("%s: quoted types must be string literals", e.SrcRange)
		}

		return typeexpr.Parse(v.AsString())

	default:
		return nil, fmt.Errorf("%s: unsupported type expression", expr.Range())
	}
}
