package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_DistinctNames(t *testing.T) {
	m := Resolve("args", Each{Name: "arg"})
	assert.Equal(t, Methods{Accumulator: "arg", BulkSetter: "args"}, m)
	assert.False(t, m.Collision)
	assert.Equal(t, []string{"arg", "args"}, m.Names())
}

func TestResolve_Collision(t *testing.T) {
	m := Resolve("env", Each{Name: "env"})
	assert.True(t, m.Collision)
	assert.Empty(t, m.BulkSetter)
	assert.Equal(t, []string{"env"}, m.Names())
}
