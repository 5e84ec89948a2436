package app

import (
	"errors"
	"fmt"
	"slices"
)

// Commands understood by App.Run.
const (
	CommandGen     = "gen"
	CommandCheck   = "check"
	CommandInspect = "inspect"
	CommandTry     = "try"
)

// Commands lists every command in help order.
var Commands = []string{CommandGen, CommandCheck, CommandInspect, CommandTry}

// Call is one interpreter call of the try command.
type Call struct {
	Method string
	// Expr is the argument, an HCL expression.
	Expr string
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string

	Packages []string // Go package patterns
	Schema   string   // YAML or HCL schema file
	Types    []string // records to process; empty means all

	OutDir      string
	PackageName string
	DryRun      bool
	// Imports maps type qualifiers to import paths for schema types.
	Imports map[string]string

	Calls []Call

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains(Commands, cfg.Command) {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	switch {
	case len(cfg.Packages) == 0 && cfg.Schema == "":
		return nil, errors.New("one of -pkg or -schema is required")
	case len(cfg.Packages) > 0 && cfg.Schema != "":
		return nil, errors.New("-pkg and -schema are mutually exclusive")
	}

	switch cfg.Command {
	case CommandInspect, CommandTry:
		if len(cfg.Types) != 1 {
			return nil, fmt.Errorf("%s needs exactly one -type", cfg.Command)
		}
	}

	if cfg.Command != CommandTry && len(cfg.Calls) > 0 {
		return nil, errors.New("-call is only valid for try")
	}

	return &cfg, nil
}
