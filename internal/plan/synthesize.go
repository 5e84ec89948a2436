package plan

import (
	"fmt"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/directive"
	"builder-generator/internal/schema"
	"builder-generator/internal/shape"
	"builder-generator/internal/typeexpr"
)

// Synthesizer turns records into builder plans.
type Synthesizer struct {
	config Config
}

// NewSynthesizer creates a synthesizer. Empty config fields take their
// DefaultConfig values.
func NewSynthesizer(config Config) *Synthesizer {
	return &Synthesizer{config: config.withDefaults()}
}

// Synthesize builds the plan for rec. On any error diagnostic the plan is nil.
func (s *Synthesizer) Synthesize(rec *schema.Record) (*BuilderPlan, *diagnostic.Diagnostics) {
	descriptors, diags := schema.Extract(rec)
	if diags.HasErrors() {
		return nil, diags
	}

	shapes, classifyDiags := shape.ClassifyAll(rec.Name, descriptors)
	diags.Merge(*classifyDiags)

	if diags.HasErrors() {
		return nil, diags
	}

	builderName := rec.Name + s.config.BuilderSuffix

	p := &BuilderPlan{
		Record:          rec.Name,
		Package:         rec.Package,
		PkgPath:         rec.PkgPath,
		Declared:        rec.Declared,
		BuilderName:     builderName,
		ConstructorName: s.config.ConstructorPrefix + builderName,
		BuildMethod:     s.config.BuildMethod,
		Fields:          make([]Field, 0, len(descriptors)),
	}

	for i, fd := range descriptors {
		p.Fields = append(p.Fields, synthesizeField(fd, shapes[i]))
	}

	s.checkMethods(p, diags)

	if diags.HasErrors() {
		return nil, diags
	}

	notePlan(p, diags)

	return p, diags
}

// notePlan reports non-fatal facts about a finished plan.
func notePlan(p *BuilderPlan, diags *diagnostic.Diagnostics) {
	if len(p.Fields) == 0 {
		diags.AddWarning(diagnostic.CodeEmptyRecord,
			fmt.Sprintf("%s always builds successfully", p.BuilderName), p.Record, "")
	}

	for _, f := range p.Fields {
		if f.Collision {
			diags.AddInfo(diagnostic.CodeAccumulatorOnly,
				fmt.Sprintf("accumulator %q shares the field name, so no replace-all setter is generated", f.Name),
				p.Record, f.Name)
		}
	}
}

// SynthesizeFile builds plans for the named records of f, or for every
// record when names is empty. Records that fail are reported and skipped.
func (s *Synthesizer) SynthesizeFile(f *schema.File, names ...string) ([]*BuilderPlan, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	records := f.Records
	if len(names) > 0 {
		records = make([]*schema.Record, 0, len(names))

		for _, name := range names {
			rec := f.Find(name)
			if rec == nil {
				diags.AddError(diagnostic.CodeUnsupportedSchema,
					fmt.Sprintf("record %q not found", name), name, "")

				continue
			}

			records = append(records, rec)
		}
	}

	plans := make([]*BuilderPlan, 0, len(records))

	for _, rec := range records {
		p, recDiags := s.Synthesize(rec)
		diags.Merge(*recDiags)

		if p != nil {
			plans = append(plans, p)
		}
	}

	return plans, diags
}

// Synthesize builds the plan for rec with the default configuration.
func Synthesize(rec *schema.Record) (*BuilderPlan, *diagnostic.Diagnostics) {
	return NewSynthesizer(DefaultConfig()).Synthesize(rec)
}

func synthesizeField(fd schema.FieldDescriptor, sh shape.Shape) Field {
	f := Field{
		Name:     fd.Name,
		Index:    fd.Index,
		Declared: fd.Type,
		Shape:    sh,
		Slot:     SlotAbsent,
		Pos:      fd.Pos,
	}

	method := func(name string, kind MethodKind, param *typeexpr.Expr) Method {
		return Method{Name: name, Kind: kind, Field: fd.Name, FieldIndex: fd.Index, Param: param}
	}

	switch sh := sh.(type) {
	case shape.Required:
		f.Methods = []Method{method(fd.Name, MethodSet, sh.Type)}
	case shape.Optional:
		f.Methods = []Method{method(fd.Name, MethodSetOptional, sh.Inner)}
	case shape.Repeated:
		f.Slot = SlotEmptySequence
		_, f.OptionalSequence = typeexpr.Match(fd.Type, typeexpr.WrapperOptional)

		m := directive.Resolve(fd.Name, directive.Each{Name: sh.Each})
		f.Collision = m.Collision

		f.Methods = []Method{method(m.Accumulator, MethodPush, sh.Inner)}
		if m.BulkSetter != "" {
			f.Methods = append(f.Methods, method(m.BulkSetter, MethodReplaceAll, typeexpr.Sequence(sh.Inner)))
		}
	}

	return f
}

// checkMethods reports method names that clash with each other or with the
// build operation.
func (s *Synthesizer) checkMethods(p *BuilderPlan, diags *diagnostic.Diagnostics) {
	owners := make(map[string]string)

	for _, f := range p.Fields {
		for _, m := range f.Methods {
			if m.Name == p.BuildMethod {
				diags.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticError,
					Code:     diagnostic.CodeReservedMethod,
					Message:  fmt.Sprintf("method %q is reserved for building the record", m.Name),
					Record:   p.Record,
					Field:    f.Name,
					Pos:      f.Pos,
				})

				continue
			}

			if owner, ok := owners[m.Name]; ok {
				diags.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticError,
					Code:     diagnostic.CodeMethodConflict,
					Message:  fmt.Sprintf("method %q is already defined by field %q", m.Name, owner),
					Record:   p.Record,
					Field:    f.Name,
					Pos:      f.Pos,
				})

				continue
			}

			owners[m.Name] = f.Name
		}
	}
}
