package model

import "time"

// Mapping is an asserted relationship between a control in one
// framework and a control in another. Mappings are standalone facts
// owned by the engine's mapping list: they are appended and may later
// be verified, never deleted. Creating one also appends denormalized
// entries to each resolvable endpoint control's index; any future
// mutation path must update both locations.
type Mapping struct {
	SourceFramework string      `json:"source_framework"`
	SourceControl   string      `json:"source_control"`
	TargetFramework string      `json:"target_framework"`
	TargetControl   string      `json:"target_control"`
	Type            MappingType `json:"mapping_type"`
	Confidence      float64     `json:"confidence"`
	Notes           string      `json:"notes"`
	Verified        bool        `json:"verified"`
	LastUpdated     time.Time   `json:"last_updated"`
}

// Verify marks the mapping as verified and bumps its timestamp.
func (m *Mapping) Verify() {
	m.Verified = true
	m.LastUpdated = time.Now()
}

// Involves reports whether the given (framework, control) pair appears
// as either endpoint of the mapping.
func (m *Mapping) Involves(frameworkID, controlID string) bool {
	return (m.SourceFramework == frameworkID && m.SourceControl == controlID) ||
		(m.TargetFramework == frameworkID && m.TargetControl == controlID)
}

// Between reports whether the mapping connects the two frameworks,
// in either storage direction.
func (m *Mapping) Between(fw1, fw2 string) bool {
	return (m.SourceFramework == fw1 && m.TargetFramework == fw2) ||
		(m.SourceFramework == fw2 && m.TargetFramework == fw1)
}

// GapControl is the serialized view of an unmapped control in a gap
// analysis result.
type GapControl struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RiskLevel   RiskLevel `json:"risk_level"`
}

// GapSet holds both sides of a gap analysis; Source and Target
// duplicate the top-level unmapped lists for caller convenience.
type GapSet struct {
	Source []GapControl `json:"source"`
	Target []GapControl `json:"target"`
}

// GapAnalysis is an immutable snapshot of a one-directional
// comparison between two frameworks. Results are computed on demand
// from current engine state and never cached.
type GapAnalysis struct {
	SourceFramework     string `json:"source_framework"`
	TargetFramework     string `json:"target_framework"`
	TotalSourceControls int    `json:"total_source_controls"`
	TotalTargetControls int    `json:"total_target_controls"`

	// MappedControls is the raw count of mappings between the two
	// frameworks, not the distinct-covered-control count. A control
	// with several mappings to the same framework counts once per
	// mapping, so CoveragePercentage can exceed 100. Kept for
	// compatibility with the established coverage formula.
	MappedControls int `json:"mapped_controls"`

	// CoveragePercentage is MappedControls / TotalSourceControls * 100,
	// or 0 when the source framework has no controls.
	CoveragePercentage float64 `json:"coverage_percentage"`

	UnmappedSourceControls []GapControl `json:"unmapped_source_controls"`
	UnmappedTargetControls []GapControl `json:"unmapped_target_controls"`
	Gaps                   GapSet       `json:"gaps"`
}

// MatrixCell is one entry of a compliance matrix: the coverage of the
// row framework measured against the column framework.
type MatrixCell struct {
	Coverage float64 `json:"coverage"`
	Mappings int     `json:"mappings"`
	Gaps     int     `json:"gaps"`
}

// ComplianceMatrix is an all-pairs coverage snapshot for a framework
// set. Matrix[i][j] holds the cell for ordered pair (i, j); diagonal
// entries are omitted, so consumers render self-pairs specially.
type ComplianceMatrix struct {
	Frameworks  []string                         `json:"frameworks"`
	Matrix      map[string]map[string]MatrixCell `json:"matrix"`
	GeneratedAt time.Time                        `json:"generated_at"`
}
