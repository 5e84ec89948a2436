package interp

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decode stores a built record into target, which must be a pointer to a
// struct whose fields carry `cty:"name"` tags. Optional fields decode into
// pointers, left nil when absent.
func Decode(v cty.Value, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	implied, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return gocty.FromCtyValue(v, target)
	}

	converted, err := convert.Convert(v, implied)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", v.Type().FriendlyName(), implied.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, target)
}
