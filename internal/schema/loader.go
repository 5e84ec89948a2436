package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a YAML (.yaml, .yml) or HCL (.hcl) schema file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var f *File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		f, err = ParseHCL(data, path)
	case ".yaml", ".yml":
		f, err = Parse(data)
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q (want .yaml, .yml or .hcl)", filepath.Ext(path))
	}

	if err != nil {
		return nil, err
	}

	f.Source = path

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var yf yamlFile

	err := yaml.Unmarshal(data, &yf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return yf.toFile(), nil
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Package == "" {
		f.Package = "builders"
	}

	for _, r := range f.Records {
		if r.Package == "" {
			r.Package = f.Package
		}
	}
}
