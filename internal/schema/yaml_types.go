package schema

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"builder-generator/internal/directive"
)

type yamlFile struct {
	Version string       `yaml:"version"`
	Package string       `yaml:"package"`
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Name     string     `yaml:"name"`
	Fields   yamlFields `yaml:"fields"`
	Variants []string   `yaml:"variants"`
	line     int
}

type yamlField struct {
	Name    string        `yaml:"name"`
	Type    string        `yaml:"type"`
	Builder yamlDirective `yaml:"builder"`
	line    int
}

// yamlFields keeps the declaration order of a record's fields.
type yamlFields struct {
	Items      []yamlField
	Positional bool
}

// yamlDirective holds the raw builder directive(s) of a field.
type yamlDirective []directive.Raw

func (yf *yamlFile) toFile() *File {
	f := &File{Version: yf.Version, Package: yf.Package}

	for _, yr := range yf.Records {
		rec := &Record{
			Name:       yr.Name,
			Positional: yr.Fields.Positional,
			Variants:   yr.Variants,
		}

		if yr.line > 0 {
			rec.Pos = fmt.Sprintf("line %d", yr.line)
		}

		for _, fld := range yr.Fields.Items {
			raw := RawField{
				Name:       fld.Name,
				TypeText:   fld.Type,
				Directives: fld.Builder,
			}
			if fld.line > 0 {
				raw.Pos = fmt.Sprintf("line %d", fld.line)
			}

			rec.Fields = append(rec.Fields, raw)
		}

		f.Records = append(f.Records, rec)
	}

	applyDefaults(f)

	return f
}

// UnmarshalYAML records the line of the record.
func (r *yamlRecord) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlRecord

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*r = yamlRecord(p)
	r.line = node.Line

	return nil
}

// UnmarshalYAML records the line of the field.
func (f *yamlField) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlField

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*f = yamlField(p)
	f.line = node.Line

	return nil
}

// UnmarshalYAML accepts:
//   - a sequence of field mappings: [{name: a, type: string}]
//   - an ordered mapping of name to type or field mapping: {a: string}
//   - a sequence of bare types, which marks the record positional
func (fs *yamlFields) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				fs.Positional = true
				continue
			}

			var f yamlField
			if err := item.Decode(&f); err != nil {
				return err
			}

			fs.Items = append(fs.Items, f)
		}

		return nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]

			var f yamlField

			switch val.Kind {
			case yaml.ScalarNode:
				f.Type = val.Value
			case yaml.MappingNode:
				if err := val.Decode(&f); err != nil {
					return err
				}
			default:
				return fmt.Errorf("line %d: field %q: expected a type or a field mapping", val.Line, key.Value)
			}

			f.Name = key.Value
			f.line = key.Line
			fs.Items = append(fs.Items, f)
		}

		return nil

	default:
		return fmt.Errorf("line %d: expected a list or mapping of fields, got %v", node.Line, node.Kind)
	}
}

// UnmarshalYAML accepts a mapping ({each: arg}), attribute text
// ('each = "arg"') or a sequence of either.
func (d *yamlDirective) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			*d = append(*d, yamlRaw(item))
		}
	default:
		*d = yamlDirective{yamlRaw(node)}
	}

	return nil
}

func yamlRaw(node *yaml.Node) directive.Raw {
	switch node.Kind {
	case yaml.ScalarNode:
		return directive.TextRaw(node.Value)

	case yaml.MappingNode:
		var entries []directive.Entry
		for i := 0; i+1 < len(node.Content); i += 2 {
			entries = append(entries, directive.Entry{
				Key:   node.Content[i].Value,
				Value: yamlScalarValue(node.Content[i+1]),
			})
		}

		return directive.EntriesRaw(entries...)

	default:
		return directive.Raw{Err: fmt.Errorf("line %d: unexpected %v", node.Line, node.Kind)}
	}
}

// yamlScalarValue converts a YAML node to a cty value, keeping the
// distinction between string and non-string scalars.
func yamlScalarValue(node *yaml.Node) cty.Value {
	if node.Kind != yaml.ScalarNode {
		return cty.DynamicVal
	}

	switch node.ShortTag() {
	case "!!str":
		return cty.StringVal(node.Value)
	case "!!int", "!!float":
		if v, err := cty.ParseNumberVal(node.Value); err == nil {
			return v
		}

		return cty.DynamicVal
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return cty.DynamicVal
		}

		return cty.BoolVal(b)
	case "!!null":
		return cty.NullVal(cty.DynamicPseudoType)
	default:
		return cty.DynamicVal
	}
}
