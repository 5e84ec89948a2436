package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"unicode"

	"builder-generator/internal/common"
	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
)

// RuntimeImportPath is the import path of the package generated builders
// report missing fields with.
const RuntimeImportPath = "builder-generator/pkg/buildrt"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package of the generated files for records without
	// a Go declaration. Empty means the record's own package.
	PackageName string
	// OutputDir is where unformatted sidecar files go when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// Imports maps type qualifiers to import paths for schema types that
	// carry no import path.
	Imports map[string]string
	// RuntimeImport overrides RuntimeImportPath.
	RuntimeImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		GenerateComments: true,
		RuntimeImport:    RuntimeImportPath,
	}
}

// Generator generates Go code from builder plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = RuntimeImportPath
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "command_builder.go").
	Filename string
	// Record is the record the file builds.
	Record string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per plan, in plan order.
func (g *Generator) Generate(plans []*plan.BuilderPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(plans))

	for _, p := range plans {
		file, err := g.GenerateBuilder(p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.BuilderName, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateBuilder renders the builder for a single plan. When the output
// does not format, the unformatted code is returned along with the error
// and also written next to OutputDir for inspection.
func (g *Generator) GenerateBuilder(p *plan.BuilderPlan) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Record:   p.Record,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Record:   p.Record,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the builder template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	GenerateComments bool

	Record          string
	DeclareRecord   bool
	BuilderName     string
	StateName       string
	StateField      string
	ConstructorName string
	BuildMethod     string

	Fields      []fieldData
	HasRepeated bool
}

// fieldData is one record field as seen by the template.
type fieldData struct {
	Name string
	// RecordType is the field type in the record struct.
	RecordType string
	// SlotType is the field type in the builder state.
	SlotType string
	Required bool
	Repeated bool
	// Local names the copy taken of an optional sequence before reset.
	Local   string
	Methods []methodData
}

// methodData is one builder method.
type methodData struct {
	Name     string
	Field    string
	Param    string
	ElemType string
	Push     bool
	Replace  bool
	Doc      string
}

func (g *Generator) buildTemplateData(p *plan.BuilderPlan) (*templateData, error) {
	pkgName := p.Package
	if !p.Declared && g.config.PackageName != "" {
		pkgName = g.config.PackageName
	}

	if pkgName == "" {
		return nil, fmt.Errorf("record %s has no package name", p.Record)
	}

	contextPkgPath := ""
	if p.Declared {
		contextPkgPath = p.PkgPath
	}

	tf := newTypeFormatter(contextPkgPath, g.config.Imports)

	data := &templateData{
		PackageName:      pkgName,
		Filename:         Filename(p.Record),
		GenerateComments: g.config.GenerateComments,
		Record:           p.Record,
		DeclareRecord:    !p.Declared,
		BuilderName:      p.BuilderName,
		StateName:        common.LowerFirst(p.BuilderName) + "State",
		StateField:       stateField(p.MethodNames()),
		ConstructorName:  p.ConstructorName,
		BuildMethod:      p.BuildMethod,
	}

	for i := range p.Fields {
		fd, err := g.fieldData(tf, &p.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.Fields[i].Name, err)
		}

		data.Fields = append(data.Fields, fd)
		data.HasRepeated = data.HasRepeated || fd.Repeated
	}

	if len(p.RequiredFields()) > 0 {
		tf.addImport(g.config.RuntimeImport, "buildrt")
	}

	data.Imports = tf.sortedImports()

	return data, nil
}

func (g *Generator) fieldData(tf *typeFormatter, f *plan.Field) (fieldData, error) {
	recordType, err := tf.goType(f.Declared)
	if err != nil {
		return fieldData{}, err
	}

	param, err := tf.goType(f.Shape.ParamType())
	if err != nil {
		return fieldData{}, err
	}

	fd := fieldData{
		Name:       f.Name,
		RecordType: recordType,
		Required:   f.Kind() == shape.KindRequired,
		Repeated:   f.Kind() == shape.KindRepeated,
	}

	switch f.Kind() {
	case shape.KindRepeated:
		fd.SlotType = "[]" + param
		if f.OptionalSequence {
			fd.Local = fmt.Sprintf("seq%d", f.Index)
		}
	default:
		fd.SlotType = "*" + param
	}

	for _, m := range f.Methods {
		md := methodData{
			Name:     m.Name,
			Field:    f.Name,
			Param:    param,
			ElemType: param,
		}

		switch m.Kind {
		case plan.MethodSet:
			md.Doc = fmt.Sprintf("sets %s.", f.Name)
		case plan.MethodSetOptional:
			md.Doc = fmt.Sprintf("sets %s. Left unset, it builds as nil.", f.Name)
		case plan.MethodPush:
			md.Push = true
			md.Doc = fmt.Sprintf("appends one element to %s.", f.Name)
		case plan.MethodReplaceAll:
			md.Replace = true
			md.Param = "[]" + param
			md.Doc = fmt.Sprintf("replaces all elements of %s.", f.Name)
		}

		fd.Methods = append(fd.Methods, md)
	}

	return fd, nil
}

// stateField names the builder field holding the state so that it does
// not collide with a method.
func stateField(methods []string) string {
	name := "state"
	for slices.Contains(methods, name) {
		name += "_"
	}

	return name
}

// Filename returns the generated file name for a record.
func Filename(record string) string {
	return snakeCase(record) + "_builder.go"
}

// snakeCase converts CamelCase to snake_case.
func snakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				sb.WriteRune('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
