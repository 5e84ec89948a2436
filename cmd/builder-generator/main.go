// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator synthesizes fluent builders for record types:
//   - reads records from Go packages (struct types) or YAML/HCL schemas
//   - classifies every field as required, optional or repeated
//   - generates <record>_builder.go files, or builds records in memory
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"builder-generator/internal/app"
	"builder-generator/internal/cli"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	return app.NewApp(outW, errW, config).Run(context.Background())
}
