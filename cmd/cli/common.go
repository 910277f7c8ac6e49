package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/export"
	"github.com/complymap/complymap/pkg/frameworks"
	"github.com/complymap/complymap/pkg/ui"
)

// defaultConfigFile is looked for in the working directory when no
// -config flag is given.
const defaultConfigFile = ".complymap.yaml"

// commonFlags registers the flags every subcommand shares and returns
// pointers the caller reads after Parse.
type commonFlags struct {
	configFile *string
	dataFile   *string
	noColor    *bool
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configFile: fs.String("config", "", "YAML config file"),
		dataFile:   fs.String("data", "", "Snapshot file to load instead of built-in frameworks"),
		noColor:    fs.Bool("no-color", false, "Disable styled output"),
	}
}

// loadConfig merges defaults, the config file, and command-line flags,
// in that order.
func loadConfig(cf commonFlags) *config.Config {
	cfg := config.Default()

	path, explicit := defaultConfigFile, false
	if *cf.configFile != "" {
		path, explicit = *cf.configFile, true
	}
	if err := cfg.LoadFile(path, explicit); err != nil {
		fatal(err.Error())
	}

	if *cf.dataFile != "" {
		cfg.DataFile = *cf.dataFile
	}
	if *cf.noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor || !ui.ColorTerminal() {
		os.Setenv("NO_COLOR", "1")
	}
	return cfg
}

// buildEngine returns the engine every command operates on: the
// built-in seeded frameworks, or the snapshot named by the config.
func buildEngine(cfg *config.Config) *engine.Engine {
	if cfg.DataFile == "" {
		return frameworks.NewSeededEngine()
	}

	snap, err := readSnapshot(cfg.DataFile)
	if err != nil {
		fatal(err.Error())
	}
	e := engine.New()
	export.Import(e, snap)
	return e
}

// readSnapshot decodes a snapshot file, picking the codec from the
// file extension.
func readSnapshot(path string) (*export.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return export.DecodeYAML(data)
	default:
		return export.DecodeJSON(data)
	}
}

// writeOutput writes result bytes to the configured output file, or
// stdout when none is set.
func writeOutput(cfg *config.Config, data []byte) {
	if cfg.OutputFile == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(cfg.OutputFile, data, 0o644); err != nil {
		fatal(fmt.Sprintf("writing %s: %v", cfg.OutputFile, err))
	}
	ui.PrintSuccess("written to " + cfg.OutputFile)
}

func fatal(msg string) {
	ui.PrintError(msg)
	os.Exit(1)
}
