package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/app"
)

func TestParse_Gen(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{
		"gen", "-schema", "cmd.yaml", "-type", "Command,Header", "-type", "Other",
		"-out", "gen", "-package", "builders", "-dry-run",
		"-import", "acme=example.com/acme", "-log-level", "DEBUG",
	}, &out)
	require.NoError(t, err)
	assert.False(t, exit)

	assert.Equal(t, app.CommandGen, cfg.Command)
	assert.Equal(t, "cmd.yaml", cfg.Schema)
	assert.Equal(t, []string{"Command", "Header", "Other"}, cfg.Types)
	assert.Equal(t, "gen", cfg.OutDir)
	assert.Equal(t, "builders", cfg.PackageName)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, map[string]string{"acme": "example.com/acme"}, cfg.Imports)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Try(t *testing.T) {
	cfg, _, err := Parse([]string{
		"try", "-pkg", "./examples/command", "-type", "Command",
		"-call", `Arg="--verbose"`, "-call", `Executable="run"`, "-call", `Args=["a", "b=c"]`,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"./examples/command"}, cfg.Packages)
	assert.Equal(t, []app.Call{
		{Method: "Arg", Expr: `"--verbose"`},
		{Method: "Executable", Expr: `"run"`},
		{Method: "Args", Expr: `["a", "b=c"]`},
	}, cfg.Calls)
}

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"help"}, {"gen", "-h"}} {
		var out bytes.Buffer

		cfg, exit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.NotEmpty(t, out.String())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"build", "-schema", "x.yaml"}},
		{"no input", []string{"gen"}},
		{"both inputs", []string{"gen", "-pkg", ".", "-schema", "x.yaml"}},
		{"inspect without type", []string{"inspect", "-schema", "x.yaml"}},
		{"try with two types", []string{"try", "-schema", "x.yaml", "-type", "A,B"}},
		{"bad call", []string{"try", "-schema", "x.yaml", "-type", "A", "-call", "noequals"}},
		{"call on check", []string{"check", "-schema", "x.yaml", "-call", "a=1"}},
		{"bad log format", []string{"check", "-schema", "x.yaml", "-log-format", "xml"}},
		{"bad log level", []string{"check", "-schema", "x.yaml", "-log-level", "loud"}},
		{"positional args", []string{"check", "-schema", "x.yaml", "extra"}},
		{"undefined flag", []string{"check", "-schema", "x.yaml", "-dry-run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, exit, err := Parse(tt.args, &bytes.Buffer{})
			assert.False(t, exit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
