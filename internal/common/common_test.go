package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdent(t *testing.T) {
	assert.True(t, IsValidIdent("arg"))
	assert.True(t, IsValidIdent("_x1"))
	assert.True(t, IsValidIdent("Env"))
	assert.False(t, IsValidIdent(""))
	assert.False(t, IsValidIdent("1arg"))
	assert.False(t, IsValidIdent("with-dash"))
	assert.False(t, IsValidIdent("func"))
	assert.False(t, IsValidIdent("_"))
	assert.True(t, IsValidIdent("__"))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "commandBuilder", LowerFirst("CommandBuilder"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "command", PkgAlias("builder-generator/examples/command"))
	assert.Equal(t, "", PkgAlias(""))
}
