// Command complymap maps controls between security compliance
// frameworks and reports coverage, gaps, and mapping suggestions.
package main

import (
	"fmt"
	"os"

	"github.com/complymap/complymap/pkg/ui"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `complymap - compliance framework control mapping

Usage:
  complymap <command> [flags]

Commands:
  frameworks   List registered compliance frameworks
  show         Show a framework's controls, or one control in detail
  gaps         Analyze coverage gaps between two frameworks
  matrix       Build the all-pairs compliance coverage matrix
  similar      Suggest mapping candidates for a control by text similarity
  report       Generate a compliance report (json, html, pdf, text)
  export       Export frameworks and mappings to a snapshot file
  import       Validate and summarize a snapshot file
  mcp          Start the MCP server over stdio

Global flags (accepted by every command):
  -config <file>   YAML config file (default: .complymap.yaml if present)
  -data <file>     Snapshot to load instead of the built-in frameworks
  -no-color        Disable styled output

Run 'complymap <command> -h' for command-specific flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "frameworks", "fw", "list":
		runFrameworks()
	case "show":
		runShow()
	case "gaps", "gap":
		runGaps()
	case "matrix":
		runMatrix()
	case "similar", "suggest":
		runSimilar()
	case "report":
		runReport()
	case "export":
		runExport()
	case "import":
		runImport()
	case "mcp":
		runMCP()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(0)
	case "-v", "--version", "version":
		ui.PrintMiniBanner()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}
