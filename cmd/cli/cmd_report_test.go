package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/complymap/complymap/pkg/frameworks"
	"github.com/complymap/complymap/pkg/report"
)

// TestPrintReportSummary checks the text summary against the seeded
// frameworks: every framework header line carries the control and
// domain counts from its summary block.
func TestPrintReportSummary(t *testing.T) {
	e := frameworks.NewSeededEngine()
	r, err := report.NewBuilder(e).Generate()
	if err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		printReportSummary(r)
	})

	for _, want := range []string{
		"SOC 2",
		"12 controls, 5 domains",
		"ISO 27001",
		"14 controls, 8 domains",
		"NIST Cybersecurity Framework",
		"15 controls, 5 domains",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\noutput:\n%s", want, out)
		}
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
