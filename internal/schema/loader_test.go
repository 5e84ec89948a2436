package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"builder-generator/internal/directive"
	"builder-generator/internal/typeexpr"
)

func TestLoadFile_YAML(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "command.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "command", f.Package)
	assert.Equal(t, filepath.Join("testdata", "command.yaml"), f.Source)
	assert.Equal(t, []string{"Command", "Header"}, f.Names())

	cmd := f.Find("Command")
	require.NotNil(t, cmd)
	assert.Equal(t, "command", cmd.Package)
	assert.False(t, cmd.Declared)
	require.Len(t, cmd.Fields, 4)

	assert.Equal(t, "executable", cmd.Fields[0].Name)
	assert.Equal(t, "string", cmd.Fields[0].TypeText)
	assert.Empty(t, cmd.Fields[0].Directives)

	args := cmd.Fields[1]
	assert.Equal(t, "sequence(string)", args.TypeText)
	require.Len(t, args.Directives, 1)
	require.Len(t, args.Directives[0].Entries, 1)
	assert.Equal(t, "each", args.Directives[0].Entries[0].Key)
	assert.True(t, args.Directives[0].Entries[0].Value.RawEquals(cty.StringVal("arg")))
	assert.Equal(t, "line 8", args.Pos)
}

func TestLoadFile_YAMLMappingFields(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "command.yaml"))
	require.NoError(t, err)

	hdr := f.Find("Header")
	require.NotNil(t, hdr)
	require.Len(t, hdr.Fields, 2)
	assert.Equal(t, "key", hdr.Fields[0].Name)
	assert.Equal(t, "string", hdr.Fields[0].TypeText)
	assert.Equal(t, "values", hdr.Fields[1].Name)
	assert.Equal(t, "[]string", hdr.Fields[1].TypeText)
	assert.Equal(t, []directive.Raw{directive.TextRaw(`each = "values"`)}, hdr.Fields[1].Directives)
}

func TestLoadFile_HCL(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "command.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "command", f.Package)

	cmd := f.Find("Command")
	require.NotNil(t, cmd)
	require.Len(t, cmd.Fields, 4)

	assert.True(t, cmd.Fields[0].Type.Equal(typeexpr.Bare("string")))
	assert.True(t, cmd.Fields[1].Type.Equal(typeexpr.Sequence(typeexpr.Bare("string"))))
	assert.True(t, cmd.Fields[2].Type.Equal(typeexpr.Optional(typeexpr.Bare("string"))))
	assert.True(t, cmd.Fields[3].Type.Equal(typeexpr.Optional(typeexpr.Named("time", "Duration"))))

	require.Len(t, cmd.Fields[1].Directives, 1)
	d, err := directive.Parse(cmd.Fields[1].Directives[0])
	require.NoError(t, err)
	assert.Equal(t, directive.Each{Name: "arg"}, d)
	assert.Contains(t, cmd.Fields[1].Pos, "command.hcl")
}

func TestParseHCL_Unsupported(t *testing.T) {
	src := `
record "Pair" {
  types = [string, int]
}

record "Shape" {
  variant "Circle" {}
  variant "Square" {}
}

record "Weird" {
  field "a" {
    type = map(string, int)
  }
  field "b" {
    type = "map[string]int"
  }
  field "c" {
    builder {
      each = c
    }
  }
}
`
	f, err := ParseHCL([]byte(src), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "builders", f.Package)

	assert.True(t, f.Find("Pair").Positional)
	assert.Equal(t, []string{"Circle", "Square"}, f.Find("Shape").Variants)

	weird := f.Find("Weird")
	require.Len(t, weird.Fields, 3)
	assert.Error(t, weird.Fields[0].TypeErr)
	assert.True(t, weird.Fields[1].Type.IsOpaque())
	assert.Nil(t, weird.Fields[2].Type)
	require.Len(t, weird.Fields[2].Directives, 1)

	_, err = directive.Parse(weird.Fields[2].Directives[0])
	assert.ErrorIs(t, err, directive.ErrInvalidDirective)
}

func TestParseHCL_BuilderAttributesInSourceOrder(t *testing.T) {
	src := `
record "Tagged" {
  field "tags" {
    type = sequence(string)
    builder {
      zeta = 1
      each = "tag"
      alpha = true
    }
  }
}
`
	f, err := ParseHCL([]byte(src), "inline.hcl")
	require.NoError(t, err)

	fields := f.Find("Tagged").Fields
	require.Len(t, fields, 1)
	require.Len(t, fields[0].Directives, 1)

	raw := fields[0].Directives[0]
	require.NoError(t, raw.Err)
	require.Len(t, raw.Entries, 3)
	assert.Equal(t, "zeta", raw.Entries[0].Key)
	assert.Equal(t, "each", raw.Entries[1].Key)
	assert.True(t, raw.Entries[1].Value.RawEquals(cty.StringVal("tag")))
	assert.Equal(t, "alpha", raw.Entries[2].Key)

	_, err = directive.Parse(raw)
	assert.ErrorIs(t, err, directive.ErrInvalidDirective)
}

func TestParseHCL_SyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`record "X" {`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema HCL")
}

func TestParse_YAMLErrors(t *testing.T) {
	_, err := Parse([]byte("records: [ {name: X, fields: 3} ]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema YAML")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)

	dir := t.TempDir()
	p := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(p, []byte("{}"), 0o644))

	_, err = LoadFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema file extension")
}

func TestYAMLScalarValue(t *testing.T) {
	f, err := Parse([]byte(`
records:
  - name: R
    fields:
      - name: a
        type: "[]int"
        builder: {each: 5}
      - name: b
        type: "[]int"
        builder: {each: "5"}
      - name: c
        type: "[]int"
        builder: {each: true}
      - name: d
        type: "[]int"
        builder: {each: [x]}
`))
	require.NoError(t, err)

	fields := f.Find("R").Fields
	assert.True(t, fields[0].Directives[0].Entries[0].Value.Type().Equals(cty.Number))
	assert.True(t, fields[1].Directives[0].Entries[0].Value.RawEquals(cty.StringVal("5")))
	assert.True(t, fields[2].Directives[0].Entries[0].Value.RawEquals(cty.True))
	assert.False(t, fields[3].Directives[0].Entries[0].Value.IsKnown())
}
