package directive

import (
	"github.com/zclconf/go-cty/cty"
)

// KeyEach is the only recognized directive key.
const KeyEach = "each"

// Directive is a validated field directive. Each is the only variant.
type Directive interface {
	isDirective()
	String() string
}

// Each names the accumulator method of a repeated field.
type Each struct {
	Name string
}

func (Each) isDirective() {}

// String returns the directive in attribute syntax.
func (e Each) String() string {
	return KeyEach + ` = "` + e.Name + `"`
}

// Entry is a single decoded key/value pair of a raw directive.
type Entry struct {
	Key   string
	Value cty.Value
}

// Raw is a directive as written by a front-end, before validation.
// Text holds attribute syntax and takes precedence; otherwise Entries
// holds pairs decoded by the front-end.
type Raw struct {
	Text    string
	Entries []Entry
	// Filename is used for positions when parsing Text.
	Filename string
	// Err is set when the front-end could not decode the directive at all.
	Err error
}

// TextRaw returns a Raw holding attribute syntax.
func TextRaw(text string) Raw {
	return Raw{Text: text}
}

// EntriesRaw returns a Raw holding decoded entries.
func EntriesRaw(entries ...Entry) Raw {
	return Raw{Entries: entries}
}

// StringEntry returns an entry with a string value.
func StringEntry(key, value string) Entry {
	return Entry{Key: key, Value: cty.StringVal(value)}
}

// EachOf returns the each directive among ds, if any.
func EachOf(ds []Directive) (Each, bool) {
	for _, d := range ds {
		if e, ok := d.(Each); ok {
			return e, true
		}
	}

	return Each{}, false
}
