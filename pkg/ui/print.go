package ui

import (
	"fmt"
	"os"
	"strings"
)

// Version is the CLI version shown in the banner.
const Version = "1.0.0"

const miniBanner = `
________________________________________________

 complymap v%s
________________________________________________`

// PrintMiniBanner prints the minimal banner to stderr.
func PrintMiniBanner() {
	fmt.Fprintf(os.Stderr, "%s\n", HeaderStyle.Render(fmt.Sprintf(miniBanner, Version)))
	fmt.Fprintln(os.Stderr)
}

// PrintDivider prints a horizontal divider to stderr.
func PrintDivider() {
	fmt.Fprintln(os.Stderr, LabelStyle.Render(strings.Repeat("-", 60)))
}

// PrintSection prints a section header to stderr.
func PrintSection(title string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, HeaderStyle.Render("> "+title))
	PrintDivider()
}

// PrintConfigLine prints a single config line to stderr.
func PrintConfigLine(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		LabelStyle.Render(key+":"),
		ValueStyle.Render(value),
	)
}

// PrintSuccess prints a success message to stderr.
func PrintSuccess(message string) {
	fmt.Fprintln(os.Stderr, VerifiedStyle.Render("  [+] "+message))
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("  [X] "+message))
}

// PrintInfo prints an info message to stderr.
func PrintInfo(message string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", LabelStyle.Render("*"), message)
}
