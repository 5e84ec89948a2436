package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"builder-generator/internal/analyze"
	"builder-generator/internal/ctxlog"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/interp"
	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

// ErrDiagnostics is returned when synthesis reported errors.
var ErrDiagnostics = errors.New("synthesis reported errors")

// App runs one builder-generator command.
type App struct {
	outW   io.Writer
	config *Config
	logger *slog.Logger
}

// NewApp creates an App writing command output to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		config: cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// source is a set of records sharing a default output directory.
type source struct {
	file *schema.File
	dir  string
}

// unit is the synthesized plans of one source.
type unit struct {
	dir   string
	plans []*plan.BuilderPlan
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Running command.", "command", a.config.Command)

	sources, err := a.loadSources(ctx)
	if err != nil {
		return err
	}

	units, diags := a.synthesize(ctx, sources)

	if a.config.Command == CommandCheck {
		return a.check(units, diags)
	}

	if diags.HasErrors() {
		for _, d := range diags.Errors {
			a.logger.Error("Synthesis failed.", "diagnostic", d.String())
		}

		return fmt.Errorf("%w: %w", ErrDiagnostics, diags.Error())
	}

	switch a.config.Command {
	case CommandGen:
		return a.generate(ctx, units)
	case CommandInspect:
		return a.inspect(units)
	case CommandTry:
		return a.try(units)
	default:
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}

func (a *App) loadSources(ctx context.Context) ([]source, error) {
	if a.config.Schema != "" {
		f, err := schema.LoadFile(a.config.Schema)
		if err != nil {
			return nil, err
		}

		a.logger.Debug("Loaded schema.", "path", a.config.Schema, "records", len(f.Records))

		return []source{{file: f, dir: filepath.Dir(a.config.Schema)}}, nil
	}

	pkgs, err := analyze.NewAnalyzer().LoadPackages(ctx, a.config.Packages...)
	if err != nil {
		return nil, err
	}

	sources := make([]source, 0, len(pkgs))
	for _, pkg := range pkgs {
		sources = append(sources, source{file: pkg.File(), dir: pkg.Dir})
	}

	return sources, nil
}

// synthesize builds plans for the selected records of every source.
func (a *App) synthesize(ctx context.Context, sources []source) ([]unit, *diagnostic.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	synth := plan.NewSynthesizer(plan.DefaultConfig())
	diags := &diagnostic.Diagnostics{}
	found := make(map[string]bool)

	units := make([]unit, 0, len(sources))

	for _, src := range sources {
		u := unit{dir: src.dir}

		for _, rec := range src.file.Records {
			if len(a.config.Types) > 0 && !slices.Contains(a.config.Types, rec.Name) {
				continue
			}

			found[rec.Name] = true

			p, recDiags := synth.Synthesize(rec)
			diags.Merge(*recDiags)

			if p != nil {
				logger.Debug("Synthesized builder.", "record", rec.Name, "methods", len(p.MethodNames()))
				u.plans = append(u.plans, p)
			}
		}

		units = append(units, u)
	}

	for _, name := range a.config.Types {
		if !found[name] {
			diags.AddError(diagnostic.CodeUnsupportedSchema, fmt.Sprintf("record %q not found", name), name, "")
		}
	}

	return units, diags
}

func (a *App) generate(ctx context.Context, units []unit) error {
	for _, u := range units {
		if len(u.plans) == 0 {
			continue
		}

		dir := a.config.OutDir
		if dir == "" {
			dir = u.dir
		}

		cfg := gen.DefaultGeneratorConfig()
		cfg.OutputDir = dir
		cfg.PackageName = a.config.PackageName
		cfg.Imports = a.config.Imports

		files, err := gen.NewGenerator(cfg).Generate(u.plans)
		if err != nil {
			return err
		}

		if a.config.DryRun {
			for _, f := range files {
				fmt.Fprintf(a.outW, "// %s\n%s\n", filepath.Join(dir, f.Filename), f.Content)
			}

			continue
		}

		if err := gen.WriteFiles(ctx, files, dir); err != nil {
			return err
		}

		a.logger.Info("Generated builders.", "dir", dir, "files", len(files))
	}

	return nil
}

func (a *App) check(units []unit, diags *diagnostic.Diagnostics) error {
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(a.outW, "%s: %s\n", d.Severity, d)
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", ErrDiagnostics, len(diags.Errors))
	}

	n := 0
	for _, u := range units {
		n += len(u.plans)
	}

	fmt.Fprintf(a.outW, "ok: %d record(s)\n", n)

	return nil
}

// onlyPlan returns the single plan selected by -type.
func onlyPlan(units []unit) (*plan.BuilderPlan, error) {
	for _, u := range units {
		if len(u.plans) > 0 {
			return u.plans[0], nil
		}
	}

	return nil, errors.New("no record selected")
}

func (a *App) inspect(units []unit) error {
	p, err := onlyPlan(units)
	if err != nil {
		return err
	}

	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(a.outW, p)

	return nil
}

func (a *App) try(units []unit) error {
	p, err := onlyPlan(units)
	if err != nil {
		return err
	}

	b := interp.NewFactory(p).New()

	for i, c := range a.config.Calls {
		v, err := evalCall(i, c)
		if err != nil {
			return err
		}

		if _, err := b.Call(c.Method, v); err != nil {
			return fmt.Errorf("call %d (%s): %w", i+1, c.Method, err)
		}

		a.logger.Debug("Called builder method.", "method", c.Method, "value", v.GoString())
	}

	v, err := b.Build()
	if err != nil {
		return err
	}

	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	fmt.Fprintf(a.outW, "%s\n", out)

	return nil
}

// evalCall evaluates the argument expression of a call. Expressions are
// evaluated without variables or functions.
func evalCall(i int, c Call) (cty.Value, error) {
	filename := fmt.Sprintf("<call %d>", i+1)

	expr, diags := hclsyntax.ParseExpression([]byte(c.Expr), filename, hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("call %d (%s): %w", i+1, c.Method, diags)
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("call %d (%s): %w", i+1, c.Method, diags)
	}

	return v, nil
}
