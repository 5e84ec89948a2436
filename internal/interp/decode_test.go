package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type command struct {
	Executable string   `cty:"executable"`
	Args       []string `cty:"args"`
	Env        *string  `cty:"env"`
}

func TestDecode(t *testing.T) {
	b := commandFactory(t).New().
		MustCall("executable", cty.StringVal("run")).
		MustCall("arg", cty.StringVal("--verbose")).
		MustCall("arg", cty.StringVal("--quiet"))

	v, err := b.Build()
	require.NoError(t, err)

	var cmd command
	require.NoError(t, Decode(v, &cmd))

	assert.Equal(t, "run", cmd.Executable)
	assert.Equal(t, []string{"--verbose", "--quiet"}, cmd.Args)
	assert.Nil(t, cmd.Env)

	b.MustCall("executable", cty.StringVal("x")).MustCall("env", cty.StringVal("prod"))

	v, err = b.Build()
	require.NoError(t, err)
	require.NoError(t, Decode(v, &cmd))
	require.NotNil(t, cmd.Env)
	assert.Equal(t, "prod", *cmd.Env)
	assert.Empty(t, cmd.Args)
}

func TestDecode_BadTarget(t *testing.T) {
	var cmd command

	assert.Error(t, Decode(cty.EmptyObjectVal, cmd))
	assert.Error(t, Decode(cty.EmptyObjectVal, (*command)(nil)))
}
