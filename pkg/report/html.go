package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/complymap/complymap/pkg/model"
)

// coverageRow flattens one ordered framework pair for the template;
// map iteration order in templates is not the registration order we
// want, so rows are precomputed in Go.
type coverageRow struct {
	Source string
	Target string
	Cell   CoverageCell
}

type gapRow struct {
	Source string
	Target string
	Gaps   []model.GapControl
}

type htmlView struct {
	Report       *Report
	GeneratedAt  string
	CoverageRows []coverageRow
	GapRows      []gapRow
}

// RenderHTML renders the report as a standalone HTML document.
func RenderHTML(r *Report) ([]byte, error) {
	view := htmlView{
		Report:      r,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
	for _, source := range r.Frameworks {
		for _, target := range r.Frameworks {
			if source.ID == target.ID {
				continue
			}
			view.CoverageRows = append(view.CoverageRows, coverageRow{
				Source: source.ID,
				Target: target.ID,
				Cell:   r.Coverage[source.ID][target.ID],
			})
			if gaps := r.Gaps[source.ID][target.ID]; len(gaps) > 0 {
				view.GapRows = append(view.GapRows, gapRow{
					Source: source.ID,
					Target: target.ID,
					Gaps:   gaps,
				})
			}
		}
	}

	tmpl, err := template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Compliance Mapping Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 70rem; color: #1a1a2e; }
h1 { border-bottom: 3px solid #7d56f4; padding-bottom: 0.5rem; }
h2 { margin-top: 2rem; color: #2d2d44; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d0d0e0; padding: 0.5rem 0.75rem; text-align: left; }
th { background: #7d56f4; color: #fff; }
tr:nth-child(even) { background: #f5f4fb; }
.muted { color: #6b7280; font-size: 0.85rem; }
.risk-critical { color: #c00; font-weight: bold; }
.risk-high { color: #d9534f; }
.coverage-low { color: #c00; }
.coverage-mid { color: #b8860b; }
.coverage-high { color: #1a7f37; }
</style>
</head>
<body>
<h1>Compliance Mapping Report</h1>
<p class="muted">Report {{ .Report.ID }} &middot; generated {{ .GeneratedAt }}</p>

<h2>Frameworks</h2>
<table>
<tr><th>ID</th><th>Name</th><th>Version</th><th>Controls</th><th>Domains</th></tr>
{{- range .Report.Frameworks }}
<tr><td>{{ .ID }}</td><td>{{ .Name }}</td><td>{{ .Version }}</td><td>{{ .TotalControls }}</td><td>{{ .Domains }}</td></tr>
{{- end }}
</table>

<h2>Mappings</h2>
<p>{{ .Report.Mappings.Total }} total, {{ .Report.Mappings.Verified }} verified.</p>
<table>
<tr><th>Type</th><th>Count</th></tr>
{{- range $type, $count := .Report.Mappings.ByType }}
<tr><td>{{ $type }}</td><td>{{ $count }}</td></tr>
{{- end }}
</table>

<h2>Coverage</h2>
<table>
<tr><th>Source</th><th>Target</th><th>Coverage</th><th>Mappings</th><th>Source Controls</th></tr>
{{- range .CoverageRows }}
<tr>
<td>{{ .Source }}</td>
<td>{{ .Target }}</td>
<td class="{{ if lt .Cell.Percentage 25.0 }}coverage-low{{ else if lt .Cell.Percentage 60.0 }}coverage-mid{{ else }}coverage-high{{ end }}">{{ printf "%.2f" .Cell.Percentage }}%</td>
<td>{{ .Cell.MappedControls }}</td>
<td>{{ .Cell.TotalControls }}</td>
</tr>
{{- end }}
</table>

<h2>High-Priority Gaps</h2>
{{- if .GapRows }}
{{- range .GapRows }}
<h3>{{ .Source | upper }} &rarr; {{ .Target | upper }}</h3>
<table>
<tr><th>Control</th><th>Title</th><th>Risk</th></tr>
{{- range .Gaps }}
<tr><td>{{ .ID }}</td><td>{{ .Title }}</td><td class="risk-{{ .RiskLevel }}">{{ .RiskLevel }}</td></tr>
{{- end }}
</table>
{{- end }}
{{- else }}
<p>No high or critical risk gaps across the selected frameworks.</p>
{{- end }}
</body>
</html>
`
