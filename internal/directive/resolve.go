package directive

// Methods lists the operations a repeated field emits.
type Methods struct {
	// Accumulator appends one element.
	Accumulator string
	// BulkSetter replaces the whole sequence. Empty on collision.
	BulkSetter string
	// Collision is true when the accumulator takes the field's own name.
	Collision bool
}

// Names returns the emitted method names, accumulator first.
func (m Methods) Names() []string {
	if m.BulkSetter == "" {
		return []string{m.Accumulator}
	}

	return []string{m.Accumulator, m.BulkSetter}
}

// Resolve applies the collision rule for a repeated field.
func Resolve(field string, each Each) Methods {
	if each.Name == field {
		return Methods{Accumulator: each.Name, Collision: true}
	}

	return Methods{Accumulator: each.Name, BulkSetter: field}
}
