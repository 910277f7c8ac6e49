package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/report"
	"github.com/complymap/complymap/pkg/ui"
)

// runReport generates a compliance report over the registered
// frameworks. Positional arguments restrict the framework set.
func runReport() {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	cf := registerCommon(fs)
	format := fs.String("format", "", "Output format: json, html, pdf, or text")
	output := fs.String("output", "", "Output file (default: stdout)")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(cf)
	if *format != "" {
		cfg.Format = *format
	}
	if *output != "" {
		cfg.OutputFile = *output
	}
	if err := cfg.Validate(); err != nil {
		fatal(err.Error())
	}

	e := buildEngine(cfg)

	r, err := report.NewBuilder(e).Generate(fs.Args()...)
	if err != nil {
		fatal(err.Error())
	}

	var data []byte
	switch cfg.Format {
	case config.FormatJSON:
		data, err = jsonutil.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	case config.FormatHTML:
		data, err = report.RenderHTML(r)
	case config.FormatPDF:
		if cfg.OutputFile == "" {
			fatal("pdf format requires -output")
		}
		data, err = report.RenderPDF(r)
	default:
		printReportSummary(r)
		return
	}
	if err != nil {
		fatal(err.Error())
	}
	writeOutput(cfg, data)
}

func printReportSummary(r *report.Report) {
	ui.PrintSection("Compliance Report " + r.ID)
	ui.PrintConfigLine("generated", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	ui.PrintConfigLine("mappings", fmt.Sprintf("%d total, %d verified", r.Mappings.Total, r.Mappings.Verified))
	fmt.Println()

	for _, fw := range r.Frameworks {
		fmt.Printf("%s %s  %s\n",
			ui.ValueStyle.Render(fw.Name),
			ui.BracketStyle.Render("["+fw.ID+" v"+fw.Version+"]"),
			ui.LabelStyle.Render(fmt.Sprintf("%d controls, %d domains", fw.TotalControls, fw.Domains)),
		)
	}
	fmt.Println()

	for source, targets := range r.Coverage {
		for target, cell := range targets {
			fmt.Printf("%s %s %s  %s  %s\n",
				ui.ValueStyle.Render(source),
				ui.LabelStyle.Render("->"),
				ui.ValueStyle.Render(target),
				ui.CoverageStyle(cell.Percentage).Render(fmt.Sprintf("%.2f%%", cell.Percentage)),
				ui.LabelStyle.Render(fmt.Sprintf("%d/%d", cell.MappedControls, cell.TotalControls)),
			)
		}
	}

	gapTotal := 0
	for _, targets := range r.Gaps {
		for _, gaps := range targets {
			gapTotal += len(gaps)
		}
	}
	if gapTotal > 0 {
		fmt.Println()
		ui.PrintInfo(fmt.Sprintf("%d high-risk unmapped controls; use 'complymap gaps' for detail", gapTotal))
	}
}
