// Package report composes engine outputs into aggregate compliance
// reports: per-framework summaries, mapping totals, an all-pairs
// coverage table, and high-priority gap listings. Rendering to JSON,
// HTML, and PDF lives here too; the engine itself never formats
// anything.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
)

// FrameworkSummary is the per-framework header block of a report.
type FrameworkSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Version       string `json:"version"`
	TotalControls int    `json:"total_controls"`
	Domains       int    `json:"domains"`
}

// MappingTotals aggregates the engine's mapping list.
type MappingTotals struct {
	Total    int                       `json:"total"`
	Verified int                       `json:"verified"`
	ByType   map[model.MappingType]int `json:"by_type"`
}

// CoverageCell is one directional coverage entry of the report's
// coverage table. Percentage is rounded to two decimals for display;
// the unrounded value lives in the underlying gap analysis.
type CoverageCell struct {
	Percentage     float64 `json:"percentage"`
	MappedControls int     `json:"mapped_controls"`
	TotalControls  int     `json:"total_controls"`
}

// Report is a full compliance snapshot document.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Frameworks []FrameworkSummary `json:"frameworks"`
	Mappings   MappingTotals      `json:"mappings"`

	// Coverage holds a CoverageCell per ordered framework pair.
	Coverage map[string]map[string]CoverageCell `json:"coverage"`

	// Gaps lists, per ordered framework pair, the unmapped source
	// controls whose risk level is high or critical.
	Gaps map[string]map[string][]model.GapControl `json:"gaps"`
}

// Builder generates reports from an engine. It holds no state of its
// own; each Generate call recomputes from current engine contents.
type Builder struct {
	engine *engine.Engine
}

// NewBuilder creates a report builder over the given engine.
func NewBuilder(e *engine.Engine) *Builder {
	return &Builder{engine: e}
}

// Generate produces a report covering the given framework IDs, or all
// registered frameworks when none are given. Unregistered IDs fail
// with engine.ErrFrameworkNotFound.
func (b *Builder) Generate(frameworkIDs ...string) (*Report, error) {
	if len(frameworkIDs) == 0 {
		frameworkIDs = b.engine.FrameworkIDs()
	}
	for _, id := range frameworkIDs {
		if _, ok := b.engine.Framework(id); !ok {
			return nil, fmt.Errorf("%w: %s", engine.ErrFrameworkNotFound, id)
		}
	}

	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Frameworks:  make([]FrameworkSummary, 0, len(frameworkIDs)),
		Coverage:    make(map[string]map[string]CoverageCell, len(frameworkIDs)),
		Gaps:        make(map[string]map[string][]model.GapControl, len(frameworkIDs)),
	}

	for _, id := range frameworkIDs {
		fw, _ := b.engine.Framework(id)
		r.Frameworks = append(r.Frameworks, FrameworkSummary{
			ID:            fw.ID,
			Name:          fw.Name,
			Version:       fw.Version,
			TotalControls: fw.ControlCount(),
			Domains:       fw.DomainCount(),
		})
	}

	r.Mappings = b.mappingTotals()

	for _, sourceID := range frameworkIDs {
		r.Coverage[sourceID] = make(map[string]CoverageCell)
		r.Gaps[sourceID] = make(map[string][]model.GapControl)
		for _, targetID := range frameworkIDs {
			if sourceID == targetID {
				continue
			}
			analysis, err := b.engine.AnalyzeGaps(sourceID, targetID)
			if err != nil {
				return nil, err
			}
			r.Coverage[sourceID][targetID] = CoverageCell{
				Percentage:     round2(analysis.CoveragePercentage),
				MappedControls: analysis.MappedControls,
				TotalControls:  analysis.TotalSourceControls,
			}
			r.Gaps[sourceID][targetID] = highRiskGaps(analysis.Gaps.Source)
		}
	}

	return r, nil
}

func (b *Builder) mappingTotals() MappingTotals {
	totals := MappingTotals{
		ByType: make(map[model.MappingType]int),
	}
	for _, m := range b.engine.Mappings() {
		totals.Total++
		if m.Verified {
			totals.Verified++
		}
		totals.ByType[m.Type]++
	}
	return totals
}

// highRiskGaps keeps only gaps worth escalating in the summary view.
func highRiskGaps(gaps []model.GapControl) []model.GapControl {
	out := make([]model.GapControl, 0)
	for _, g := range gaps {
		if g.RiskLevel == model.RiskHigh || g.RiskLevel == model.RiskCritical {
			out = append(out, g)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
