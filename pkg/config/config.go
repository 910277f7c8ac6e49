// Package config holds CLI configuration shared across subcommands:
// defaults, an optional YAML config file, and validation. Flag
// parsing stays in cmd/cli; this package owns the merged result.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by report- and export-producing commands.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatText = "text"
)

// Config holds all CLI configuration options.
type Config struct {
	// DataFile is an optional snapshot (JSON or YAML) imported on
	// startup in place of the built-in framework definitions.
	DataFile string `yaml:"data_file"`

	// OutputFile is where report/export commands write
	// (empty = stdout).
	OutputFile string `yaml:"output"`

	// Format selects the output encoding: json, yaml, html, pdf,
	// or text.
	Format string `yaml:"format"`

	// Threshold is the default similarity threshold for the
	// similar command.
	Threshold float64 `yaml:"threshold"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no file or flags
// override it.
func Default() *Config {
	return &Config{
		Format:    FormatText,
		Threshold: 0.3,
	}
}

// LoadFile reads a YAML config file over the receiver's current
// values. A missing file is not an error when path is the implicit
// default; callers pass explicit=true for user-supplied paths.
func (c *Config) LoadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// Validate checks cross-field constraints after flags are merged.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatHTML, FormatPDF, FormatText:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidConfig, c.Threshold)
	}
	return nil
}
