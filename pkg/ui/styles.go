package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/complymap/complymap/pkg/model"
)

// Color palette shared across CLI output
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple - brand color
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Risk colors
	Critical = lipgloss.Color("#FF0000") // Bright red
	High     = lipgloss.Color("#FF6B6B") // Red/Orange
	Medium   = lipgloss.Color("#FFD93D") // Yellow
	Low      = lipgloss.Color("#6BCB77") // Green

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	VerifiedStyle = lipgloss.NewStyle().
			Foreground(Success)

	UnverifiedStyle = lipgloss.NewStyle().
			Foreground(Warning)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)
)

// RiskStyle returns the style for a risk level badge.
func RiskStyle(level model.RiskLevel) lipgloss.Style {
	switch level {
	case model.RiskCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(Critical)
	case model.RiskHigh:
		return lipgloss.NewStyle().Foreground(High)
	case model.RiskMedium:
		return lipgloss.NewStyle().Foreground(Medium)
	case model.RiskLow:
		return lipgloss.NewStyle().Foreground(Low)
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}

// CoverageStyle colors a coverage percentage: red below 25, yellow
// below 60, green otherwise.
func CoverageStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 25:
		return lipgloss.NewStyle().Foreground(Error)
	case pct < 60:
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Success)
	}
}
