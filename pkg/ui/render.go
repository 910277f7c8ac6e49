// Package ui provides terminal styling and table rendering for the
// complymap CLI. The analysis packages never print; everything a user
// sees on a terminal goes through here.
package ui

import (
	"fmt"
	"strings"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
)

// FormatFrameworkList renders the registered frameworks as one line
// per framework.
func FormatFrameworkList(frameworks []*model.Framework) string {
	var sb strings.Builder
	for _, fw := range frameworks {
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			ValueStyle.Render(fw.Name),
			BracketStyle.Render("["+fw.ID+" v"+fw.Version+"]"),
			LabelStyle.Render(fmt.Sprintf("%d controls,", fw.ControlCount())),
			LabelStyle.Render(fmt.Sprintf("%d domains", fw.DomainCount())),
		))
	}
	return sb.String()
}

// FormatControl renders one control with its mapping index.
func FormatControl(c *model.Control) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %s  %s %s\n",
		ValueStyle.Render(c.ID),
		c.Title,
		BracketStyle.Render("[")+RiskStyle(c.RiskLevel).Render(c.RiskLevel.String())+BracketStyle.Render("]"),
		BracketStyle.Render("["+c.ControlType.String()+"]"),
	))
	sb.WriteString("  " + SubtitleStyle.Width(Width()-4).Render(c.Description) + "\n")
	if len(c.Tags) > 0 {
		sb.WriteString("  " + LabelStyle.Render("tags: "+strings.Join(c.Tags, ", ")) + "\n")
	}
	for fwID, refs := range c.Mappings {
		for _, ref := range refs {
			sb.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				LabelStyle.Render("->"),
				ValueStyle.Render(fwID+" "+ref.ControlID),
				BracketStyle.Render("["+ref.MappingType.String()+"]"),
				LabelStyle.Render(fmt.Sprintf("%.0f%%", ref.Confidence*100)),
			))
		}
	}
	return sb.String()
}

// FormatMapping renders one mapping as a single line.
func FormatMapping(m *model.Mapping) string {
	badge := UnverifiedStyle.Render("unverified")
	if m.Verified {
		badge = VerifiedStyle.Render("verified")
	}
	return fmt.Sprintf("%s %s %s %s %s %s",
		ValueStyle.Render(m.SourceFramework+" "+m.SourceControl),
		LabelStyle.Render("->"),
		ValueStyle.Render(m.TargetFramework+" "+m.TargetControl),
		BracketStyle.Render("["+m.Type.String()+"]"),
		LabelStyle.Render(fmt.Sprintf("%.0f%%", m.Confidence*100)),
		BracketStyle.Render("[")+badge+BracketStyle.Render("]"),
	)
}

// FormatGapAnalysis renders a gap analysis summary plus its unmapped
// source controls.
func FormatGapAnalysis(a *model.GapAnalysis) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%s -> %s", a.SourceFramework, a.TargetFramework)) + "\n")
	sb.WriteString(fmt.Sprintf("  %s %s  %s %d/%d  %s %d\n",
		LabelStyle.Render("coverage:"),
		CoverageStyle(a.CoveragePercentage).Render(fmt.Sprintf("%.2f%%", a.CoveragePercentage)),
		LabelStyle.Render("mapped:"),
		a.MappedControls, a.TotalSourceControls,
		LabelStyle.Render("gaps:"),
		len(a.Gaps.Source),
	))
	for _, g := range a.Gaps.Source {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			BracketStyle.Render("[")+RiskStyle(g.RiskLevel).Render(g.RiskLevel.String())+BracketStyle.Render("]"),
			ValueStyle.Render(g.ID),
			g.Title,
		))
	}
	return sb.String()
}

// FormatMatrix renders a compliance matrix as a table with "-" on the
// diagonal.
func FormatMatrix(m *model.ComplianceMatrix) string {
	colWidth := 12
	for _, id := range m.Frameworks {
		if len(id)+2 > colWidth {
			colWidth = len(id) + 2
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%*s", colWidth, ""))
	for _, id := range m.Frameworks {
		sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%*s", colWidth, id)))
	}
	sb.WriteString("\n")

	for _, sourceID := range m.Frameworks {
		sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%*s", colWidth, sourceID)))
		for _, targetID := range m.Frameworks {
			if sourceID == targetID {
				sb.WriteString(LabelStyle.Render(fmt.Sprintf("%*s", colWidth, "-")))
				continue
			}
			cell := m.Matrix[sourceID][targetID]
			sb.WriteString(CoverageStyle(cell.Coverage).Render(fmt.Sprintf("%*s", colWidth, fmt.Sprintf("%.1f%%", cell.Coverage))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatSimilar renders similarity search candidates, best first.
func FormatSimilar(matches []engine.SimilarControl) string {
	if len(matches) == 0 {
		return SubtitleStyle.Render("no similar controls above threshold") + "\n"
	}
	var sb strings.Builder
	for _, sc := range matches {
		sb.WriteString(fmt.Sprintf("%s  %s %s  %s %s\n",
			CoverageStyle(sc.Similarity*100).Render(fmt.Sprintf("%.3f", sc.Similarity)),
			ValueStyle.Render(sc.FrameworkID+" "+sc.ControlID),
			sc.Title,
			LabelStyle.Render("suggest:"),
			BracketStyle.Render("["+sc.SuggestedType.String()+"]"),
		))
	}
	return sb.String()
}
