package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/ui"
)

// runGaps analyzes coverage between two frameworks.
func runGaps() {
	fs := flag.NewFlagSet("gaps", flag.ExitOnError)
	cf := registerCommon(fs)
	source := fs.String("source", "", "Source framework ID (required)")
	target := fs.String("target", "", "Target framework ID (required)")
	format := fs.String("format", "", "Output format: text or json")
	fs.Parse(os.Args[2:])

	if *source == "" || *target == "" {
		fatal("gaps requires -source and -target")
	}

	cfg := loadConfig(cf)
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fatal(err.Error())
	}
	e := buildEngine(cfg)

	analysis, err := e.AnalyzeGaps(*source, *target)
	if err != nil {
		fatal(err.Error())
	}

	if cfg.Format == config.FormatJSON {
		data, err := jsonutil.MarshalIndent(analysis, "", "  ")
		if err != nil {
			fatal(err.Error())
		}
		writeOutput(cfg, append(data, '\n'))
		return
	}

	fmt.Print(ui.FormatGapAnalysis(analysis))
}

// runMatrix builds the all-pairs coverage matrix.
func runMatrix() {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	cf := registerCommon(fs)
	format := fs.String("format", "", "Output format: text or json")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(cf)
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fatal(err.Error())
	}
	e := buildEngine(cfg)

	matrix, err := e.ComplianceMatrix(fs.Args()...)
	if err != nil {
		fatal(err.Error())
	}

	if cfg.Format == config.FormatJSON {
		data, err := jsonutil.MarshalIndent(matrix, "", "  ")
		if err != nil {
			fatal(err.Error())
		}
		writeOutput(cfg, append(data, '\n'))
		return
	}

	fmt.Print(ui.FormatMatrix(matrix))
}
