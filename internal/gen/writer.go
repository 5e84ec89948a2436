package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"builder-generator/internal/ctxlog"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(ctx context.Context, files []GeneratedFile, outputDir string) error {
	logger := ctxlog.FromContext(ctx)

	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		logger.Debug("Wrote builder.", "record", file.Record, "path", outputPath, "bytes", len(file.Content))
	}

	return nil
}

// writeDebugUnformatted writes unformatted code next to the intended output
// as <name>.unformatted.go. Failures here are ignored by callers.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
