package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"builder-generator/internal/app"
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
builder-generator - generates fluent builders for record types.

Usage:
  builder-generator <command> [options]

Commands:
  gen      generate <record>_builder.go files
  check    report diagnostics without generating
  inspect  dump the synthesized plan of one record
  try      build one record in memory from -call arguments

Run 'builder-generator <command> -h' for command options.
`

// listFlag collects comma-separated or repeated values.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}

	return nil
}

// pairFlag collects repeated key=value values in order.
type pairFlag struct {
	keys   []string
	values []string
}

func (p *pairFlag) String() string {
	parts := make([]string, len(p.keys))
	for i := range p.keys {
		parts[i] = p.keys[i] + "=" + p.values[i]
	}

	return strings.Join(parts, " ")
}

func (p *pairFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")

	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected name=value, got %q", v)
	}

	p.keys = append(p.keys, key)
	p.values = append(p.values, value)

	return nil
}

// Parse processes command-line arguments. It returns the validated
// configuration, a boolean indicating the program should exit cleanly, or
// an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	command := args[0]

	flagSet := flag.NewFlagSet("builder-generator "+command, flag.ContinueOnError)
	flagSet.SetOutput(output)

	var (
		pkgs, types    listFlag
		calls, imports pairFlag
	)

	flagSet.Var(&pkgs, "pkg", "Go package patterns to read records from (repeatable, comma-separated).")
	schemaFlag := flagSet.String("schema", "", "YAML (.yaml, .yml) or HCL (.hcl) schema file.")
	flagSet.Var(&types, "type", "Record names to process (repeatable, comma-separated). Default: all.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var (
		outFlag, packageFlag *string
		dryRunFlag           *bool
	)

	switch command {
	case app.CommandGen:
		outFlag = flagSet.String("out", "", "Output directory. Default: the directory of the package or schema.")
		packageFlag = flagSet.String("package", "", "Package name for records generated from a schema.")
		dryRunFlag = flagSet.Bool("dry-run", false, "Print generated code instead of writing files.")
		flagSet.Var(&imports, "import", "Import path for a type qualifier, as qualifier=path (repeatable).")
	case app.CommandTry:
		flagSet.Var(&calls, "call", "Builder call as method=expression, applied in order (repeatable).")
	case app.CommandCheck, app.CommandInspect:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q\n%s", command, usage)}
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		Command:   command,
		Packages:  pkgs,
		Schema:    *schemaFlag,
		Types:     types,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}

	if command == app.CommandGen {
		cfg.OutDir = *outFlag
		cfg.PackageName = *packageFlag
		cfg.DryRun = *dryRunFlag

		if len(imports.keys) > 0 {
			cfg.Imports = make(map[string]string, len(imports.keys))
			for i, k := range imports.keys {
				cfg.Imports[k] = imports.values[i]
			}
		}
	}

	for i, m := range calls.keys {
		cfg.Calls = append(cfg.Calls, app.Call{Method: m, Expr: calls.values[i]})
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", config.Command)

	return config, false, nil
}
