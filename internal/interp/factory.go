package interp

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"builder-generator/internal/match"
	"builder-generator/internal/plan"
)

// Factory creates builders for one plan. It is immutable and may be shared.
type Factory struct {
	plan    *plan.BuilderPlan
	fields  []fieldSpec
	methods map[string]methodSpec
	names   []string
}

// NewFactory prepares the method table of p.
func NewFactory(p *plan.BuilderPlan) *Factory {
	f := &Factory{
		plan:    p,
		fields:  fieldSpecs(p),
		methods: make(map[string]methodSpec),
	}

	for _, m := range p.Methods() {
		elem := f.fields[m.FieldIndex].elem

		param := elem
		if m.Kind == plan.MethodReplaceAll {
			param = cty.List(elem)
		}

		f.methods[m.Name] = methodSpec{name: m.Name, kind: m.Kind, field: m.FieldIndex, param: param}
		f.names = append(f.names, m.Name)
	}

	return f
}

func fieldSpecs(p *plan.BuilderPlan) []fieldSpec {
	fields := make([]fieldSpec, len(p.Fields))

	for i, pf := range p.Fields {
		param := pf.Shape.ParamType()
		fields[i] = fieldSpec{
			name:    pf.Name,
			kind:    pf.Kind(),
			elem:    CtyType(param),
			integer: integerType(param),
		}
	}

	return fields
}

// Plan returns the plan the factory was made from.
func (f *Factory) Plan() *plan.BuilderPlan {
	return f.plan
}

// Methods returns the method names in declaration order.
func (f *Factory) Methods() []string {
	return append([]string(nil), f.names...)
}

// Type returns the cty object type of built records. Repeated fields of
// types without a cty counterpart are typed cty.DynamicPseudoType.
func (f *Factory) Type() cty.Type {
	attrs := make(map[string]cty.Type, len(f.fields))
	for _, fs := range f.fields {
		attrs[fs.name] = fs.valueType()
	}

	return cty.Object(attrs)
}

// New returns a builder with empty state.
func (f *Factory) New() *Builder {
	return &Builder{factory: f, state: newState(f.fields)}
}

// Builder is a single-owner in-memory builder.
type Builder struct {
	factory *Factory
	state   *State
}

// State returns the builder's current state.
func (b *Builder) State() *State {
	return b.state
}

// Call invokes method with argument v. Unknown methods and arguments that
// do not convert to the parameter type are rejected and leave the state
// unchanged. Accepted calls return the same builder.
func (b *Builder) Call(method string, v cty.Value) (*Builder, error) {
	m, ok := b.factory.methods[method]
	if !ok {
		return b, &UnknownMethodError{
			Builder:     b.factory.plan.BuilderName,
			Method:      method,
			Suggestions: match.Closest(method, b.factory.names, match.DefaultMaxSuggestions),
		}
	}

	arg, err := b.factory.convertArg(m, v)
	if err != nil {
		return b, err
	}

	sl := &b.state.slots[m.field]

	switch m.kind {
	case plan.MethodSet, plan.MethodSetOptional:
		sl.set = true
		sl.value = arg
	case plan.MethodPush:
		sl.elems = append(sl.elems, arg)
	case plan.MethodReplaceAll:
		sl.elems = append([]cty.Value{}, arg.AsValueSlice()...)
	}

	return b, nil
}

// MustCall is Call for arguments known to be valid. It panics on error.
func (b *Builder) MustCall(method string, v cty.Value) *Builder {
	if _, err := b.Call(method, v); err != nil {
		panic(err)
	}

	return b
}

// Build validates the state and returns the record. On success the
// builder is reset to empty state; on failure the state is kept.
func (b *Builder) Build() (cty.Value, error) {
	v, err := validate(b.factory.fields, b.state)
	if err != nil {
		return cty.NilVal, err
	}

	b.state = newState(b.factory.fields)

	return v, nil
}

func (f *Factory) convertArg(m methodSpec, v cty.Value) (cty.Value, error) {
	fail := func(format string, args ...any) (cty.Value, error) {
		return cty.NilVal, &ArgumentError{Method: m.name, Detail: fmt.Sprintf(format, args...)}
	}

	if v.IsNull() {
		return fail("value must not be null")
	}

	if !v.IsWhollyKnown() {
		return fail("value must be known")
	}

	if m.kind == plan.MethodReplaceAll && m.param.ElementType().HasDynamicTypes() {
		if !v.CanIterateElements() || v.Type().IsMapType() || v.Type().IsObjectType() {
			return fail("expected a sequence, got %s", v.Type().FriendlyName())
		}

		elems := v.AsValueSlice()
		for i, e := range elems {
			if e.IsNull() {
				return fail("elements must not be null")
			}

			if c, err := convert.Convert(e, m.param.ElementType()); err == nil {
				elems[i] = c
			} else {
				return fail("element %d: %s", i, err)
			}
		}

		return cty.TupleVal(elems), nil
	}

	out, err := convert.Convert(v, m.param)
	if err != nil {
		return fail("expected %s, got %s: %s", m.param.FriendlyName(), v.Type().FriendlyName(), err)
	}

	fs := &f.fields[m.field]

	elems := []cty.Value{out}
	if m.kind == plan.MethodReplaceAll {
		elems = out.AsValueSlice()
	}

	for _, e := range elems {
		if e.IsNull() {
			return fail("elements must not be null")
		}

		if fs.integer == nil {
			continue
		}

		if !e.AsBigFloat().IsInt() {
			return fail("expected a whole number, got %s", e.AsBigFloat().String())
		}

		if err := gocty.FromCtyValue(e, reflect.New(fs.integer).Interface()); err != nil {
			return fail("%s out of range for %s: %s", e.AsBigFloat().String(), fs.integer, err)
		}
	}

	return out, nil
}
