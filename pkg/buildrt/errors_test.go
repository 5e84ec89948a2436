package buildrt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingField(t *testing.T) {
	err := MissingField("executable")
	assert.EqualError(t, err, "field executable has not been set")
	assert.ErrorIs(t, err, ErrMissingField)

	name, ok := FieldName(err)
	assert.True(t, ok)
	assert.Equal(t, "executable", name)
}

func TestMissingRecordField(t *testing.T) {
	err := fmt.Errorf("constructing: %w", MissingRecordField("Command", "env"))
	assert.EqualError(t, err, "constructing: Command: field env has not been set")
	assert.ErrorIs(t, err, ErrMissingField)

	name, ok := FieldName(err)
	assert.True(t, ok)
	assert.Equal(t, "env", name)
}

func TestFieldName_OtherError(t *testing.T) {
	_, ok := FieldName(errors.New("boom"))
	assert.False(t, ok)
	assert.False(t, errors.Is(errors.New("boom"), ErrMissingField))
}
