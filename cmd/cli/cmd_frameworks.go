package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/ui"
)

// runFrameworks lists every registered framework.
func runFrameworks() {
	fs := flag.NewFlagSet("frameworks", flag.ExitOnError)
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

	if cfg.Format == config.FormatJSON {
		type row struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Version  string `json:"version"`
			Domains  int    `json:"domains"`
			Controls int    `json:"controls"`
		}
		var rows []row
		for _, fw := range e.Frameworks() {
			rows = append(rows, row{fw.ID, fw.Name, fw.Version, fw.DomainCount(), fw.ControlCount()})
		}
		data, err := jsonutil.MarshalIndent(rows, "", "  ")
		if err != nil {
			fatal(err.Error())
		}
		writeOutput(cfg, append(data, '\n'))
		return
	}

	fmt.Print(ui.FormatFrameworkList(e.Frameworks()))
}

// runShow prints a framework's domains and controls, or one control
// in detail with its mappings.
func runShow() {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	cf := registerCommon(fs)
	frameworkID := fs.String("framework", "", "Framework ID (required)")
	controlID := fs.String("control", "", "Control ID; omit to list the whole framework")
	fs.Parse(os.Args[2:])

	if *frameworkID == "" {
		fatal("show requires -framework")
	}

	cfg := loadConfig(cf)
	e := buildEngine(cfg)

	fw, ok := e.Framework(*frameworkID)
	if !ok {
		fatal("unknown framework: " + *frameworkID)
	}

	if *controlID != "" {
		c, ok := fw.Control(*controlID)
		if !ok {
			fatal(fmt.Sprintf("no control %s in %s", *controlID, *frameworkID))
		}
		fmt.Print(ui.FormatControl(c))
		for _, m := range e.MappingsForControl(*frameworkID, *controlID) {
			fmt.Println(ui.FormatMapping(m))
		}
		return
	}

	ui.PrintSection(fw.Name + " v" + fw.Version)
	for _, d := range fw.Domains() {
		fmt.Println(ui.HeaderStyle.Render(d.ID) + "  " + d.Name)
		for _, c := range d.Controls() {
			fmt.Print(ui.FormatControl(c))
		}
	}
}
