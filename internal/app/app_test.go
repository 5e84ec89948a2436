package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/interp"
	"builder-generator/pkg/buildrt"
)

func run(t *testing.T, cfg Config) (string, error) {
	t.Helper()

	config, err := NewConfig(cfg)
	require.NoError(t, err)

	var out, logs bytes.Buffer

	err = NewApp(&out, &logs, config).Run(context.Background())

	return out.String(), err
}

func TestRun_GenDryRun(t *testing.T) {
	out, err := run(t, Config{Command: CommandGen, Schema: "testdata/command.yaml", DryRun: true})
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join("testdata", "command_builder.go"))
	assert.Contains(t, out, "package shell")
	assert.Contains(t, out, "type CommandBuilder struct")
	assert.Contains(t, out, "func (b *CommandBuilder) arg(v string) *CommandBuilder {")
}

func TestRun_GenWritesFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, Config{Command: CommandGen, Schema: "testdata/command.yaml", OutDir: dir, PackageName: "gen"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "command_builder.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package gen")
}

func TestRun_Check(t *testing.T) {
	out, err := run(t, Config{Command: CommandCheck, Schema: "testdata/command.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 record(s)\n", out)

	out, err = run(t, Config{Command: CommandCheck, Schema: "testdata/broken.hcl"})
	require.ErrorIs(t, err, ErrDiagnostics)
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "Named.name: [invalid_each_target]")
	assert.Contains(t, out, "[invalid_directive]")
	assert.Contains(t, out, "did you mean each?")
}

func TestRun_GenFailsOnDiagnostics(t *testing.T) {
	_, err := run(t, Config{Command: CommandGen, Schema: "testdata/broken.hcl", DryRun: true})
	require.ErrorIs(t, err, ErrDiagnostics)
}

func TestRun_UnknownType(t *testing.T) {
	_, err := run(t, Config{Command: CommandInspect, Schema: "testdata/command.yaml", Types: []string{"Nope"}})
	require.ErrorIs(t, err, ErrDiagnostics)
	assert.Contains(t, err.Error(), `record "Nope" not found`)
}

func TestRun_Inspect(t *testing.T) {
	out, err := run(t, Config{Command: CommandInspect, Schema: "testdata/command.yaml", Types: []string{"Command"}})
	require.NoError(t, err)
	assert.Contains(t, out, "BuilderName: (string) (len=14) \"CommandBuilder\"")
	assert.Contains(t, out, "Each: (string) (len=3) \"arg\"")
}

func TestRun_Try(t *testing.T) {
	out, err := run(t, Config{
		Command: CommandTry,
		Schema:  "testdata/command.yaml",
		Types:   []string{"Command"},
		Calls: []Call{
			{Method: "arg", Expr: `"--verbose"`},
			{Method: "arg", Expr: `"--quiet"`},
			{Method: "executable", Expr: `"run"`},
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"executable":"run","args":["--verbose","--quiet"],"env":null}`, out)
}

func TestRun_TryErrors(t *testing.T) {
	tests := []struct {
		name   string
		calls  []Call
		target error
	}{
		{"missing field", []Call{{Method: "arg", Expr: `"x"`}}, buildrt.ErrMissingField},
		{"unknown method", []Call{{Method: "argz", Expr: `"x"`}}, interp.ErrUnknownMethod},
		{"argument type", []Call{{Method: "arg", Expr: `["x"]`}}, interp.ErrArgumentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Config{Command: CommandTry, Schema: "testdata/command.yaml", Types: []string{"Command"}, Calls: tt.calls})
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := run(t, Config{
		Command: CommandTry, Schema: "testdata/command.yaml", Types: []string{"Command"},
		Calls: []Call{{Method: "arg", Expr: `upper("x")`}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call 1 (arg)")
}

func TestRun_GoPackage(t *testing.T) {
	out, err := run(t, Config{
		Command:  CommandCheck,
		Packages: []string{"builder-generator/examples/command"},
		Types:    []string{"Command"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "info: Command.Env: [accumulator_only]")
	assert.Contains(t, out, "ok: 1 record(s)\n")
}

func TestRun_GoPackageSkipsGeneratedBuilders(t *testing.T) {
	cfg := Config{Command: CommandCheck, Packages: []string{"builder-generator/examples/command"}}

	out, err := run(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 1 record(s)\n")

	cfg.Command = CommandGen
	cfg.DryRun = true

	out, err = run(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "command_builder.go")
	assert.NotContains(t, out, "CommandBuilderBuilder")
	assert.NotContains(t, out, "command_builder_builder.go")
}

func TestRun_MissingSchema(t *testing.T) {
	_, err := run(t, Config{Command: CommandCheck, Schema: "testdata/none.yaml"})
	require.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{Command: "build", Schema: "x"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Command: CommandTry, Schema: "x", Types: []string{"A"}, Calls: []Call{{Method: "a", Expr: "1"}}})
	require.NoError(t, err)
	assert.Len(t, cfg.Calls, 1)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger("warn", "json", &buf).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger("debug", "json", &buf).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger("bogus", "text", &buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
