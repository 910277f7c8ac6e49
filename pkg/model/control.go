package model

// ControlRef is one entry in a control's denormalized mapping index:
// a pointer to a control in another framework plus the asserted
// relationship. The authoritative record is the engine's mapping
// list; this index exists for fast "what does CC6.1 map to in ISO
// 27001" lookups without a full scan.
type ControlRef struct {
	ControlID   string      `json:"control_id"`
	MappingType MappingType `json:"mapping_type"`
	Confidence  float64     `json:"confidence"`
}

// Control is an individual requirement or clause within a framework.
// A control belongs to exactly one framework; its ID is unique within
// that framework only, not globally.
type Control struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FrameworkID string `json:"framework_id"`

	// DomainID names the owning domain within the framework.
	// Empty means the control is not grouped under a domain.
	DomainID string `json:"domain_id,omitempty"`

	Requirements           []string `json:"requirements,omitempty"`
	ImplementationGuidance string   `json:"implementation_guidance,omitempty"`
	TestingProcedures      string   `json:"testing_procedures,omitempty"`

	RiskLevel   RiskLevel   `json:"risk_level"`
	ControlType ControlType `json:"control_type"`

	// Tags is a set with insertion order preserved; use AddTag to
	// keep it duplicate-free.
	Tags []string `json:"tags,omitempty"`

	// Mappings indexes this control's cross-framework references by
	// target framework ID, in append order. Incomplete for mappings
	// whose other endpoint was unregistered at creation time; see
	// engine.Engine.RebuildIndexes.
	Mappings map[string][]ControlRef `json:"mappings,omitempty"`
}

// AddRequirement appends a requirement string to the control.
func (c *Control) AddRequirement(requirement string) {
	c.Requirements = append(c.Requirements, requirement)
}

// AddTag adds a tag, ignoring duplicates.
func (c *Control) AddTag(tag string) {
	for _, t := range c.Tags {
		if t == tag {
			return
		}
	}
	c.Tags = append(c.Tags, tag)
}

// AddMapping appends an entry to the control's mapping index for the
// given target framework.
func (c *Control) AddMapping(frameworkID, controlID string, mappingType MappingType, confidence float64) {
	if c.Mappings == nil {
		c.Mappings = make(map[string][]ControlRef)
	}
	c.Mappings[frameworkID] = append(c.Mappings[frameworkID], ControlRef{
		ControlID:   controlID,
		MappingType: mappingType,
		Confidence:  confidence,
	})
}

// MappingsTo returns the index entries targeting the given framework,
// in append order. Nil when the control has none.
func (c *Control) MappingsTo(frameworkID string) []ControlRef {
	if c.Mappings == nil {
		return nil
	}
	return c.Mappings[frameworkID]
}

// ResetMappings discards the denormalized index so it can be rebuilt
// from the authoritative mapping list.
func (c *Control) ResetMappings() {
	c.Mappings = nil
}
