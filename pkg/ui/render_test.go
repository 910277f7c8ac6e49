package ui

import (
	"strings"
	"testing"

	"github.com/complymap/complymap/pkg/frameworks"
)

func TestFormatFrameworkList(t *testing.T) {
	e := frameworks.NewSeededEngine()

	out := FormatFrameworkList(e.Frameworks())
	for _, want := range []string{"SOC 2", "ISO 27001", "NIST Cybersecurity Framework", "12 controls", "14 controls", "15 controls"} {
		if !strings.Contains(out, want) {
			t.Errorf("framework list missing %q:\n%s", want, out)
		}
	}
}

func TestFormatGapAnalysis(t *testing.T) {
	e := frameworks.NewSeededEngine()
	analysis, err := e.AnalyzeGaps("soc2", "iso27001")
	if err != nil {
		t.Fatal(err)
	}

	out := FormatGapAnalysis(analysis)
	if !strings.Contains(out, "soc2 -> iso27001") {
		t.Errorf("missing direction header:\n%s", out)
	}
	if !strings.Contains(out, "coverage:") {
		t.Errorf("missing coverage line:\n%s", out)
	}
	for _, g := range analysis.Gaps.Source {
		if !strings.Contains(out, g.ID) {
			t.Errorf("missing gap control %s", g.ID)
		}
	}
}

func TestFormatMatrixDiagonal(t *testing.T) {
	e := frameworks.NewSeededEngine()
	matrix, err := e.ComplianceMatrix()
	if err != nil {
		t.Fatal(err)
	}

	out := FormatMatrix(matrix)
	if !strings.Contains(out, "-") {
		t.Errorf("matrix missing diagonal placeholder:\n%s", out)
	}
	for _, id := range matrix.Frameworks {
		if strings.Count(out, id) < 2 {
			t.Errorf("framework %s should appear as both row and column header", id)
		}
	}
}

func TestFormatSimilarEmpty(t *testing.T) {
	out := FormatSimilar(nil)
	if !strings.Contains(out, "no similar controls") {
		t.Errorf("empty result message missing:\n%s", out)
	}
}
