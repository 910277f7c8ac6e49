package model

// RiskLevel represents the risk level of a security control.
// All values are lowercase strings; they serialize as-is in JSON
// and YAML output.
type RiskLevel string

const (
	// RiskLow represents limited impact if the control is absent.
	RiskLow RiskLevel = "low"

	// RiskMedium represents moderate impact.
	RiskMedium RiskLevel = "medium"

	// RiskHigh represents significant impact requiring prompt attention.
	RiskHigh RiskLevel = "high"

	// RiskCritical represents controls whose absence exposes the
	// organization to immediate compromise or audit failure.
	RiskCritical RiskLevel = "critical"
)

// IsValid reports whether r is a recognized risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// Critical=4, High=3, Medium=2, Low=1, Unknown=0.
func (r RiskLevel) Score() int {
	switch r {
	case RiskCritical:
		return 4
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// String returns the risk level as a string.
func (r RiskLevel) String() string {
	return string(r)
}

// ControlType classifies how a control is implemented.
type ControlType string

const (
	// TypeTechnical covers controls enforced by systems (access control
	// software, encryption, monitoring).
	TypeTechnical ControlType = "technical"

	// TypeProcedural covers controls enforced by process and policy.
	TypeProcedural ControlType = "procedural"

	// TypePhysical covers controls over the physical environment.
	TypePhysical ControlType = "physical"
)

// IsValid reports whether t is a recognized control type.
func (t ControlType) IsValid() bool {
	switch t {
	case TypeTechnical, TypeProcedural, TypePhysical:
		return true
	}
	return false
}

// String returns the control type as a string.
func (t ControlType) String() string {
	return string(t)
}

// MappingType classifies the relationship asserted between two
// controls in different frameworks. The set is closed: grouping and
// serialization key off these exact string values.
type MappingType string

const (
	// Equivalent means the controls impose the same requirement.
	Equivalent MappingType = "equivalent"

	// Partial means the source control satisfies part of the target.
	Partial MappingType = "partial"

	// Related means the controls address overlapping concerns without
	// either satisfying the other.
	Related MappingType = "related"

	// Parent means the source control subsumes the target.
	Parent MappingType = "parent"

	// Child means the source control is subsumed by the target.
	Child MappingType = "child"
)

// IsValid reports whether m is a recognized mapping type.
func (m MappingType) IsValid() bool {
	switch m {
	case Equivalent, Partial, Related, Parent, Child:
		return true
	}
	return false
}

// String returns the mapping type as a string.
func (m MappingType) String() string {
	return string(m)
}

// MappingTypes returns all mapping types in display order.
// Used by report grouping so by-type counts render deterministically.
func MappingTypes() []MappingType {
	return []MappingType{Equivalent, Partial, Related, Parent, Child}
}
