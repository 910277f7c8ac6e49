package report

import (
	"bytes"
	"fmt"
	"time"

	gofpdf "github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/complymap/complymap/pkg/model"
)

var pdfRiskColors = map[model.RiskLevel][]int{
	model.RiskCritical: {220, 38, 38},
	model.RiskHigh:     {234, 88, 12},
	model.RiskMedium:   {202, 138, 4},
	model.RiskLow:      {22, 163, 74},
}

// RenderPDF renders the report as a PDF document.
func RenderPDF(r *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Compliance Mapping Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(45, 45, 68)
	pdf.CellFormat(0, 12, "Compliance Mapping Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report %s - generated %s", r.ID, r.GeneratedAt.Format(time.RFC3339)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	addFrameworkSection(pdf, r)
	addMappingSection(pdf, r)
	addCoverageSection(pdf, r)
	addGapSection(pdf, r)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(125, 86, 244)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func addFrameworkSection(pdf *gofpdf.Fpdf, r *Report) {
	addSectionHeader(pdf, "Frameworks")

	headerRow(pdf, []colSpec{{"ID", 28}, {"Name", 70}, {"Version", 22}, {"Controls", 25}, {"Domains", 25}})
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	for _, fw := range r.Frameworks {
		pdf.CellFormat(28, 7, fw.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, fw.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, fw.Version, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", fw.TotalControls), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", fw.Domains), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}

func addMappingSection(pdf *gofpdf.Fpdf, r *Report) {
	addSectionHeader(pdf, "Mappings")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d mappings recorded, %d verified.", r.Mappings.Total, r.Mappings.Verified), "", "L", false)
	pdf.Ln(1)

	titleCase := cases.Title(language.English)
	headerRow(pdf, []colSpec{{"Type", 40}, {"Count", 25}})
	pdf.SetFont("Helvetica", "", 9)
	for _, mt := range model.MappingTypes() {
		count, ok := r.Mappings.ByType[mt]
		if !ok {
			continue
		}
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(40, 7, titleCase.String(mt.String()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", count), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}

func addCoverageSection(pdf *gofpdf.Fpdf, r *Report) {
	addSectionHeader(pdf, "Coverage")

	headerRow(pdf, []colSpec{{"Source", 35}, {"Target", 35}, {"Coverage", 28}, {"Mappings", 28}, {"Controls", 28}})
	pdf.SetFont("Helvetica", "", 9)
	for _, source := range r.Frameworks {
		for _, target := range r.Frameworks {
			if source.ID == target.ID {
				continue
			}
			cell := r.Coverage[source.ID][target.ID]
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(35, 7, source.ID, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, target.ID, "1", 0, "L", false, 0, "")
			if cell.Percentage < 25 {
				pdf.SetTextColor(220, 38, 38)
			} else if cell.Percentage < 60 {
				pdf.SetTextColor(202, 138, 4)
			} else {
				pdf.SetTextColor(22, 163, 74)
			}
			pdf.CellFormat(28, 7, fmt.Sprintf("%.2f%%", cell.Percentage), "1", 0, "C", false, 0, "")
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(28, 7, fmt.Sprintf("%d", cell.MappedControls), "1", 0, "C", false, 0, "")
			pdf.CellFormat(28, 7, fmt.Sprintf("%d", cell.TotalControls), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}
	pdf.Ln(5)
}

func addGapSection(pdf *gofpdf.Fpdf, r *Report) {
	addSectionHeader(pdf, "High-Priority Gaps")

	found := false
	for _, source := range r.Frameworks {
		for _, target := range r.Frameworks {
			gaps := r.Gaps[source.ID][target.ID]
			if len(gaps) == 0 {
				continue
			}
			found = true

			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(45, 45, 68)
			pdf.CellFormat(0, 8, fmt.Sprintf("%s -> %s", source.ID, target.ID), "", 1, "L", false, 0, "")

			headerRow(pdf, []colSpec{{"Control", 30}, {"Title", 110}, {"Risk", 25}})
			pdf.SetFont("Helvetica", "", 9)
			for _, g := range gaps {
				pdf.SetTextColor(60, 60, 60)
				pdf.CellFormat(30, 7, g.ID, "1", 0, "L", false, 0, "")
				pdf.CellFormat(110, 7, g.Title, "1", 0, "L", false, 0, "")
				riskColor := pdfRiskColors[g.RiskLevel]
				if riskColor == nil {
					riskColor = []int{128, 128, 128}
				}
				pdf.SetTextColor(riskColor[0], riskColor[1], riskColor[2])
				pdf.CellFormat(25, 7, g.RiskLevel.String(), "1", 0, "C", false, 0, "")
				pdf.Ln(-1)
			}
			pdf.Ln(3)
		}
	}
	if !found {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(107, 114, 128)
		pdf.MultiCell(0, 5, "No high or critical risk gaps across the selected frameworks.", "", "L", false)
	}
}

type colSpec struct {
	label string
	width float64
}

func headerRow(pdf *gofpdf.Fpdf, cols []colSpec) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range cols {
		pdf.CellFormat(c.width, 8, c.label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
