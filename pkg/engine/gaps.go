package engine

import (
	"fmt"
	"time"

	"github.com/complymap/complymap/pkg/model"
)

// AnalyzeGaps computes a one-directional coverage comparison from the
// source framework to the target framework. Both IDs must be
// registered or the call fails with ErrFrameworkNotFound.
//
// Coverage uses the raw mapping count as numerator, so a source
// control with several mappings to the target framework inflates the
// percentage past 100; see model.GapAnalysis.MappedControls. The
// result is a pure function of current engine state — calling twice
// with no intervening mutation yields identical snapshots.
func (e *Engine) AnalyzeGaps(sourceID, targetID string) (*model.GapAnalysis, error) {
	sourceFW, ok := e.frameworks[sourceID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFrameworkNotFound, sourceID)
	}
	targetFW, ok := e.frameworks[targetID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFrameworkNotFound, targetID)
	}

	sourceControls := sourceFW.Controls()
	targetControls := targetFW.Controls()
	mappings := e.MappingsBetween(sourceID, targetID)

	// Distinct covered IDs per side. These sets can be smaller than
	// len(mappings) when several mappings cover the same control.
	coveredSource := make(map[string]struct{})
	coveredTarget := make(map[string]struct{})
	for _, m := range mappings {
		if m.SourceFramework == sourceID {
			coveredSource[m.SourceControl] = struct{}{}
			coveredTarget[m.TargetControl] = struct{}{}
		} else {
			coveredSource[m.TargetControl] = struct{}{}
			coveredTarget[m.SourceControl] = struct{}{}
		}
	}

	unmappedSource := collectUnmapped(sourceControls, coveredSource)
	unmappedTarget := collectUnmapped(targetControls, coveredTarget)

	coverage := 0.0
	if len(sourceControls) > 0 {
		coverage = float64(len(mappings)) / float64(len(sourceControls)) * 100
	}

	return &model.GapAnalysis{
		SourceFramework:        sourceID,
		TargetFramework:        targetID,
		TotalSourceControls:    len(sourceControls),
		TotalTargetControls:    len(targetControls),
		MappedControls:         len(mappings),
		CoveragePercentage:     coverage,
		UnmappedSourceControls: unmappedSource,
		UnmappedTargetControls: unmappedTarget,
		Gaps: model.GapSet{
			Source: unmappedSource,
			Target: unmappedTarget,
		},
	}, nil
}

func collectUnmapped(controls []*model.Control, covered map[string]struct{}) []model.GapControl {
	out := make([]model.GapControl, 0)
	for _, c := range controls {
		if _, ok := covered[c.ID]; ok {
			continue
		}
		out = append(out, model.GapControl{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			RiskLevel:   c.RiskLevel,
		})
	}
	return out
}

// ComplianceMatrix runs AnalyzeGaps for every ordered pair of the
// given framework IDs and collects the results. With no IDs it
// defaults to all registered frameworks in registration order.
// Diagonal entries are omitted.
//
// Cost is O(F²) gap analyses, each a linear scan of controls and
// mappings. Fine at reference-dataset scale (tens of controls, tens
// of mappings); not built for thousands of either.
func (e *Engine) ComplianceMatrix(frameworkIDs ...string) (*model.ComplianceMatrix, error) {
	if len(frameworkIDs) == 0 {
		frameworkIDs = e.FrameworkIDs()
	}

	matrix := make(map[string]map[string]model.MatrixCell, len(frameworkIDs))
	for _, sourceID := range frameworkIDs {
		matrix[sourceID] = make(map[string]model.MatrixCell)
		for _, targetID := range frameworkIDs {
			if sourceID == targetID {
				continue
			}
			analysis, err := e.AnalyzeGaps(sourceID, targetID)
			if err != nil {
				return nil, err
			}
			matrix[sourceID][targetID] = model.MatrixCell{
				Coverage: analysis.CoveragePercentage,
				Mappings: analysis.MappedControls,
				Gaps:     len(analysis.Gaps.Source),
			}
		}
	}

	return &model.ComplianceMatrix{
		Frameworks:  frameworkIDs,
		Matrix:      matrix,
		GeneratedAt: time.Now(),
	}, nil
}
