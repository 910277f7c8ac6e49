package engine

import (
	"sort"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/similarity"
)

// SimilarControl is one candidate produced by SimilarControls: a
// control in another framework whose title+description text overlaps
// the source control's.
type SimilarControl struct {
	FrameworkID string  `json:"framework_id"`
	ControlID   string  `json:"control_id"`
	Title       string  `json:"title"`
	Similarity  float64 `json:"similarity"`

	// SuggestedType is Equivalent above 0.9 similarity, Related
	// otherwise. A human still decides; this is a starting point.
	SuggestedType model.MappingType `json:"suggested_mapping_type"`
}

// SimilarControls scans every other registered framework for controls
// lexically similar to the given one, keeping candidates at or above
// threshold. Unknown framework or control IDs yield an empty result,
// not an error; callers that need to distinguish "unknown control"
// from "no candidates" should resolve the control first. The result
// is never nil, so it serializes as a JSON array even when empty.
//
// Results are sorted by descending similarity; ties keep discovery
// order (framework registration order, then control insertion order).
func (e *Engine) SimilarControls(controlID, frameworkID string, threshold float64) []SimilarControl {
	out := []SimilarControl{}

	sourceFW, ok := e.frameworks[frameworkID]
	if !ok {
		return out
	}
	sourceControl, ok := sourceFW.Control(controlID)
	if !ok {
		return out
	}

	sourceText := sourceControl.Title + " " + sourceControl.Description
	for _, fwID := range e.order {
		if fwID == frameworkID {
			continue
		}
		for _, candidate := range e.frameworks[fwID].Controls() {
			sim := similarity.Jaccard(sourceText, candidate.Title+" "+candidate.Description)
			if sim < threshold {
				continue
			}
			suggested := model.Related
			if sim > 0.9 {
				suggested = model.Equivalent
			}
			out = append(out, SimilarControl{
				FrameworkID:   fwID,
				ControlID:     candidate.ID,
				Title:         candidate.Title,
				Similarity:    sim,
				SuggestedType: suggested,
			})
		}
	}

	// Stable: equal similarities keep discovery order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}
