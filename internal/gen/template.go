package gen

import "text/template"

var builderTemplate = template.Must(template.New("builder").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- $b := .}}
{{if .DeclareRecord}}
{{if .GenerateComments}}// {{.Record}} is built by {{.BuilderName}}.
{{end}}type {{.Record}} struct {
{{range .Fields}}	{{.Name}} {{.RecordType}}
{{end}}}
{{end}}
{{if .GenerateComments}}// {{.BuilderName}} accumulates the fields of a {{.Record}}.
{{end}}type {{.BuilderName}} struct {
	{{.StateField}} {{.StateName}}
}

type {{.StateName}} struct {
{{range .Fields}}	{{.Name}} {{.SlotType}}
{{end}}}

{{if .GenerateComments}}// {{.ConstructorName}} returns a builder with every field unset.
{{end}}func {{.ConstructorName}}() *{{.BuilderName}} {
	return &{{.BuilderName}}{
		{{.StateField}}: {{.StateName}}{ {{- if .HasRepeated}}
{{range .Fields}}{{if .Repeated}}			{{.Name}}: {{.SlotType}}{},
{{end}}{{end}}		{{end}}},
	}
}
{{range .Fields}}{{range .Methods}}
{{if $b.GenerateComments}}// {{.Name}} {{.Doc}}
{{end}}{{if .Push}}func (b *{{$b.BuilderName}}) {{.Name}}(v {{.Param}}) *{{$b.BuilderName}} {
	b.{{$b.StateField}}.{{.Field}} = append(b.{{$b.StateField}}.{{.Field}}, v)

	return b
}
{{else if .Replace}}func (b *{{$b.BuilderName}}) {{.Name}}(vs {{.Param}}) *{{$b.BuilderName}} {
	b.{{$b.StateField}}.{{.Field}} = append([]{{.ElemType}}{}, vs...)

	return b
}
{{else}}func (b *{{$b.BuilderName}}) {{.Name}}(v {{.Param}}) *{{$b.BuilderName}} {
	b.{{$b.StateField}}.{{.Field}} = &v

	return b
}
{{end}}{{end}}{{end}}
{{if .GenerateComments}}// {{.BuildMethod}} returns the {{.Record}}. It fails on the first required
// field, in declaration order, that has not been set. On success the
// builder is reset.
{{end}}func (b *{{.BuilderName}}) {{.BuildMethod}}() ({{.Record}}, error) {
{{range .Fields}}{{if .Required}}	if b.{{$b.StateField}}.{{.Name}} == nil {
		return {{$b.Record}}{}, buildrt.MissingField("{{.Name}}")
	}

{{end}}{{end}}{{range .Fields}}{{if .Local}}	{{.Local}} := b.{{$b.StateField}}.{{.Name}}
{{end}}{{end}}
	out := {{.Record}}{
{{range .Fields}}{{if .Required}}		{{.Name}}: *b.{{$b.StateField}}.{{.Name}},
{{else if .Local}}		{{.Name}}: &{{.Local}},
{{else}}		{{.Name}}: b.{{$b.StateField}}.{{.Name}},
{{end}}{{end}}	}

	*b = *{{.ConstructorName}}()

	return out, nil
}
`))
