package engine

import (
	"testing"

	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/model"
)

func similarityEngine() *Engine {
	alpha := model.NewFramework("alpha", "Alpha", "1.0", "")
	alpha.AddControl(&model.Control{
		ID:          "A-1",
		Title:       "Access Control Policy",
		Description: "Establish and maintain an access control policy",
		FrameworkID: "alpha",
	})

	beta := model.NewFramework("beta", "Beta", "1.0", "")
	beta.AddControl(&model.Control{
		ID:          "B-1",
		Title:       "Access Control Policy",
		Description: "Establish and maintain an access control policy",
		FrameworkID: "beta",
	})
	beta.AddControl(&model.Control{
		ID:          "B-2",
		Title:       "Incident Response Plan",
		Description: "Maintain a documented incident response plan",
		FrameworkID: "beta",
	})

	e := New()
	e.RegisterFramework(alpha)
	e.RegisterFramework(beta)
	return e
}

func TestSimilarControlsExactDuplicate(t *testing.T) {
	e := similarityEngine()

	matches := e.SimilarControls("A-1", "alpha", 0.3)
	if len(matches) == 0 {
		t.Fatal("expected at least the identical control")
	}

	best := matches[0]
	if best.ControlID != "B-1" || best.FrameworkID != "beta" {
		t.Fatalf("best match = %+v, want beta B-1", best)
	}
	if best.Similarity != 1.0 {
		t.Errorf("Similarity = %v, want exactly 1.0 for identical text", best.Similarity)
	}
	if best.SuggestedType != model.Equivalent {
		t.Errorf("SuggestedType = %v, want equivalent above 0.9", best.SuggestedType)
	}
}

func TestSimilarControlsSortedDescending(t *testing.T) {
	e := similarityEngine()

	matches := e.SimilarControls("A-1", "alpha", 0.0)
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Fatalf("matches not sorted descending: %v", matches)
		}
	}
	for _, m := range matches {
		if m.FrameworkID == "alpha" {
			t.Error("source framework must be excluded from candidates")
		}
	}
}

func TestSimilarControlsThresholdFilters(t *testing.T) {
	e := similarityEngine()

	matches := e.SimilarControls("A-1", "alpha", 0.99)
	if len(matches) != 1 {
		t.Fatalf("threshold 0.99: got %d matches, want only the identical control", len(matches))
	}
	if matches[0].SuggestedType != model.Equivalent {
		t.Errorf("SuggestedType = %v, want equivalent", matches[0].SuggestedType)
	}
}

func TestSimilarControlsUnknownIDsSilent(t *testing.T) {
	e := similarityEngine()

	if got := e.SimilarControls("A-1", "ghost", 0.3); len(got) != 0 {
		t.Errorf("unknown framework: got %v, want empty", got)
	}
	if got := e.SimilarControls("nope", "alpha", 0.3); len(got) != 0 {
		t.Errorf("unknown control: got %v, want empty", got)
	}
}

func TestSimilarControlsEmptyResultIsJSONArray(t *testing.T) {
	e := similarityEngine()

	for name, got := range map[string][]SimilarControl{
		"no candidates":     e.SimilarControls("A-1", "alpha", 1.1),
		"unknown framework": e.SimilarControls("A-1", "ghost", 0.3),
		"unknown control":   e.SimilarControls("nope", "alpha", 0.3),
	} {
		if got == nil {
			t.Errorf("%s: got nil, want non-nil empty slice", name)
			continue
		}
		data, err := jsonutil.Marshal(got)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if string(data) != "[]" {
			t.Errorf("%s: serialized as %s, want []", name, data)
		}
	}
}
