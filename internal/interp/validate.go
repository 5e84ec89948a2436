package interp

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
	"builder-generator/pkg/buildrt"
)

// State is the accumulated state of one builder.
type State struct {
	slots []slot
}

// slot holds one field. Present-or-absent fields use set and value;
// repeated fields use elems, which is never nil.
type slot struct {
	set   bool
	value cty.Value
	elems []cty.Value
}

// newState returns the empty state for fields: every slot absent, every
// sequence empty.
func newState(fields []fieldSpec) *State {
	s := &State{slots: make([]slot, len(fields))}

	for i, f := range fields {
		if f.kind == shape.KindRepeated {
			s.slots[i].elems = []cty.Value{}
		}
	}

	return s
}

// IsSet reports whether field i holds a value. Repeated fields are always set.
func (s *State) IsSet(i int) bool {
	return s.slots[i].set || s.slots[i].elems != nil
}

// Validate checks state against p and assembles the record. Required
// fields are checked in declaration order; the first absent one is
// returned as a *buildrt.MissingFieldError. Absent optional fields build
// as null and repeated fields as their accumulated sequence. State is not
// modified.
func Validate(p *plan.BuilderPlan, state *State) (cty.Value, error) {
	fields := fieldSpecs(p)
	if len(fields) != len(state.slots) {
		return cty.NilVal, fmt.Errorf("state has %d fields, %s has %d", len(state.slots), p.Record, len(fields))
	}

	return validate(fields, state)
}

func validate(fields []fieldSpec, state *State) (cty.Value, error) {
	attrs := make(map[string]cty.Value, len(fields))

	for i := range fields {
		fs := &fields[i]
		sl := state.slots[i]

		switch fs.kind {
		case shape.KindRequired:
			if !state.IsSet(i) {
				return cty.NilVal, buildrt.MissingField(fs.name)
			}

			attrs[fs.name] = sl.value
		case shape.KindOptional:
			if !state.IsSet(i) {
				attrs[fs.name] = cty.NullVal(fs.elem)
				continue
			}

			attrs[fs.name] = sl.value
		case shape.KindRepeated:
			attrs[fs.name] = fs.sequenceVal(sl.elems)
		}
	}

	return cty.ObjectVal(attrs), nil
}
