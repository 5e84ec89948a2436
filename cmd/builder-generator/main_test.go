package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/app"
	"builder-generator/internal/cli"
)

func TestRun_Help(t *testing.T) {
	var out, errW bytes.Buffer

	require.NoError(t, run(&out, &errW, nil))
	assert.Contains(t, errW.String(), "Usage:")
	assert.Empty(t, out.String())
}

func TestRun_BadFlags(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"gen"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_Try(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, &bytes.Buffer{}, []string{
		"try", "-pkg", "builder-generator/examples/command", "-type", "Command",
		"-call", `Executable="run"`,
		"-call", `Arg="--verbose"`,
		"-call", `Env="HOME=/root"`,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Executable":"run","Args":["--verbose"],"Env":["HOME=/root"],"CurrentDir":null,"Timeout":null}`,
		out.String())
}

func TestRun_Check(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, &bytes.Buffer{}, []string{"check", "-schema", "../../examples/ohlcv/schema.hcl"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok:")

	err = run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"check", "-schema", "../../internal/schema/testdata/invalid.yaml"})
	assert.ErrorIs(t, err, app.ErrDiagnostics)
}
