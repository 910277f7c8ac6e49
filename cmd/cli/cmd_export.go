package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/export"
	"github.com/complymap/complymap/pkg/ui"
)

// runExport writes the engine's frameworks and mappings to a snapshot.
func runExport() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cf := registerCommon(fs)
	format := fs.String("format", "", "Snapshot format: json or yaml")
	output := fs.String("output", "", "Output file (default: stdout)")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(cf)
	if *format != "" {
		cfg.Format = *format
	}
	if *output != "" {
		cfg.OutputFile = *output
	}

	e := buildEngine(cfg)
	snap := export.Export(e)

	var data []byte
	var err error
	switch cfg.Format {
	case config.FormatYAML:
		data, err = export.EncodeYAML(snap)
	case config.FormatJSON, config.FormatText:
		data, err = export.EncodeJSON(snap)
		data = append(data, '\n')
	default:
		fatal("export supports json or yaml, got " + cfg.Format)
	}
	if err != nil {
		fatal(err.Error())
	}
	writeOutput(cfg, data)
}

// runImport loads a snapshot file and reports what it contains. Used
// to validate hand-edited snapshots before passing them via -data.
func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cf := registerCommon(fs)
	fs.Parse(os.Args[2:])

	args := fs.Args()
	if len(args) != 1 {
		fatal("usage: complymap import <snapshot-file>")
	}
	loadConfig(cf)

	snap, err := readSnapshot(args[0])
	if err != nil {
		fatal(err.Error())
	}

	e := engine.New()
	export.Import(e, snap)

	verified := 0
	for _, m := range e.Mappings() {
		if m.Verified {
			verified++
		}
	}

	ui.PrintSuccess("snapshot valid: " + args[0])
	ui.PrintConfigLine("frameworks", fmt.Sprintf("%d", len(e.Frameworks())))
	for _, fw := range e.Frameworks() {
		ui.PrintConfigLine("  "+fw.ID, fmt.Sprintf("%d controls, %d domains", fw.ControlCount(), fw.DomainCount()))
	}
	ui.PrintConfigLine("mappings", fmt.Sprintf("%d total, %d verified", len(e.Mappings()), verified))
}
