// Package directive parses per-field builder directives and resolves the
// methods a repeated field emits.
//
// The only directive is each, written in HCL attribute syntax:
//
//	Args []string `builder:"each=\"arg\""`
//
// Its value names the accumulator method. When the accumulator name equals
// the field name only the accumulator is emitted; otherwise the field also
// gets a bulk setter that replaces the whole sequence.
package directive
