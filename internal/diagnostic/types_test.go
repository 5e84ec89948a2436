package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("w", "just a warning", "Command", "")
	d.AddInfo("i", "note", "", "")
	assert.True(t, d.IsValid())

	d.AddError(CodeInvalidDirective, `expected builder(each = "...")`, "Command", "args", "each")
	d.AddError(CodeInvalidEachTarget, "each requires a sequence", "Command", "env")

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{CodeInvalidDirective, CodeInvalidEachTarget}, d.Codes())
	assert.Len(t, d.ForField("args"), 1)
	assert.Empty(t, d.ForField("executable"))

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`Command.args: [invalid_directive] expected builder(each = "...") (did you mean each?); `+
			`Command.env: [invalid_each_target] each requires a sequence`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeUnsupportedSchema, "positional record", "Pair", "")
	b.AddWarning("w", "warn", "", "")
	b.AddError(CodeMethodConflict, "conflict", "Cmd", "arg")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "x", Message: "m", Pos: "cmd.go:3:2", Field: "args"}
	assert.Equal(t, "cmd.go:3:2 args: [x] m", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
