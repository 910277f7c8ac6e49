package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/ui"
)

// runSimilar suggests mapping candidates for one control.
func runSimilar() {
	fs := flag.NewFlagSet("similar", flag.ExitOnError)
	cf := registerCommon(fs)
	frameworkID := fs.String("framework", "", "Framework the control belongs to (required)")
	controlID := fs.String("control", "", "Control ID to match against other frameworks (required)")
	threshold := fs.Float64("threshold", -1, "Minimum similarity between 0 and 1")
	format := fs.String("format", "", "Output format: text or json")
	fs.Parse(os.Args[2:])

	if *frameworkID == "" || *controlID == "" {
		fatal("similar requires -framework and -control")
	}

	cfg := loadConfig(cf)
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fatal(err.Error())
	}
	e := buildEngine(cfg)

	if _, ok := e.Framework(*frameworkID); !ok {
		fatal("unknown framework: " + *frameworkID)
	}

	matches := e.SimilarControls(*controlID, *frameworkID, cfg.Threshold)

	if cfg.Format == config.FormatJSON {
		data, err := jsonutil.MarshalIndent(matches, "", "  ")
		if err != nil {
			fatal(err.Error())
		}
		writeOutput(cfg, append(data, '\n'))
		return
	}

	ui.PrintConfigLine("threshold", fmt.Sprintf("%.2f", cfg.Threshold))
	fmt.Print(ui.FormatSimilar(matches))
}
