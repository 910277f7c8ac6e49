// Package export provides the full serialization round trip for an
// engine: every framework with its nested domains and controls, plus
// the complete mapping list, as a plain nested structure encodable to
// JSON or YAML.
//
// The mapping list is the source of truth; the per-control mapping
// indexes in a snapshot are derived data. Import regenerates them
// from the restored mapping list rather than trusting the snapshot,
// so hand-edited or stripped snapshots come back consistent.
package export

import (
	"time"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
)

// Snapshot is the root of the serialized representation.
type Snapshot struct {
	Frameworks []FrameworkData `json:"frameworks" yaml:"frameworks"`
	Mappings   []MappingData   `json:"mappings" yaml:"mappings"`
}

// FrameworkData is a serialized framework with nested domains and
// controls.
type FrameworkData struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Version     string        `json:"version" yaml:"version"`
	Description string        `json:"description" yaml:"description"`
	Domains     []DomainData  `json:"domains" yaml:"domains"`
	Controls    []ControlData `json:"controls" yaml:"controls"`
}

// DomainData is a serialized domain. Member controls are recorded by
// ID; the full control bodies live in the framework's control list.
type DomainData struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	FrameworkID string   `json:"framework_id" yaml:"framework_id"`
	ControlIDs  []string `json:"control_ids" yaml:"control_ids"`
}

// ControlData is a serialized control, including its denormalized
// mapping index.
type ControlData struct {
	ID                     string                         `json:"id" yaml:"id"`
	Title                  string                         `json:"title" yaml:"title"`
	Description            string                         `json:"description" yaml:"description"`
	FrameworkID            string                         `json:"framework_id" yaml:"framework_id"`
	DomainID               string                         `json:"domain_id,omitempty" yaml:"domain_id,omitempty"`
	Requirements           []string                       `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	ImplementationGuidance string                         `json:"implementation_guidance,omitempty" yaml:"implementation_guidance,omitempty"`
	TestingProcedures      string                         `json:"testing_procedures,omitempty" yaml:"testing_procedures,omitempty"`
	RiskLevel              model.RiskLevel                `json:"risk_level" yaml:"risk_level"`
	ControlType            model.ControlType              `json:"control_type" yaml:"control_type"`
	Tags                   []string                       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Mappings               map[string][]model.ControlRef  `json:"mappings,omitempty" yaml:"mappings,omitempty"`
}

// MappingData is a serialized mapping.
type MappingData struct {
	SourceFramework string            `json:"source_framework" yaml:"source_framework"`
	SourceControl   string            `json:"source_control" yaml:"source_control"`
	TargetFramework string            `json:"target_framework" yaml:"target_framework"`
	TargetControl   string            `json:"target_control" yaml:"target_control"`
	MappingType     model.MappingType `json:"mapping_type" yaml:"mapping_type"`
	Confidence      float64           `json:"confidence" yaml:"confidence"`
	Notes           string            `json:"notes" yaml:"notes"`
	Verified        bool              `json:"verified" yaml:"verified"`
	LastUpdated     time.Time         `json:"last_updated" yaml:"last_updated"`
}

// Export captures the engine's full state as a snapshot.
func Export(e *engine.Engine) *Snapshot {
	snap := &Snapshot{
		Frameworks: make([]FrameworkData, 0, len(e.Frameworks())),
		Mappings:   make([]MappingData, 0, len(e.Mappings())),
	}

	for _, fw := range e.Frameworks() {
		fd := FrameworkData{
			ID:          fw.ID,
			Name:        fw.Name,
			Version:     fw.Version,
			Description: fw.Description,
			Domains:     make([]DomainData, 0, fw.DomainCount()),
			Controls:    make([]ControlData, 0, fw.ControlCount()),
		}
		for _, d := range fw.Domains() {
			dd := DomainData{
				ID:          d.ID,
				Name:        d.Name,
				Description: d.Description,
				FrameworkID: d.FrameworkID,
			}
			for _, c := range d.Controls() {
				dd.ControlIDs = append(dd.ControlIDs, c.ID)
			}
			fd.Domains = append(fd.Domains, dd)
		}
		for _, c := range fw.Controls() {
			fd.Controls = append(fd.Controls, controlData(c))
		}
		snap.Frameworks = append(snap.Frameworks, fd)
	}

	for _, m := range e.Mappings() {
		snap.Mappings = append(snap.Mappings, MappingData{
			SourceFramework: m.SourceFramework,
			SourceControl:   m.SourceControl,
			TargetFramework: m.TargetFramework,
			TargetControl:   m.TargetControl,
			MappingType:     m.Type,
			Confidence:      m.Confidence,
			Notes:           m.Notes,
			Verified:        m.Verified,
			LastUpdated:     m.LastUpdated,
		})
	}

	return snap
}

// Import re-registers every framework in the snapshot, re-appends
// every mapping, and regenerates the per-control mapping indexes
// from the restored mapping list. Index data in the snapshot is
// ignored; the mapping list is authoritative.
func Import(e *engine.Engine, snap *Snapshot) {
	for _, fd := range snap.Frameworks {
		fw := model.NewFramework(fd.ID, fd.Name, fd.Version, fd.Description)
		for _, dd := range fd.Domains {
			fw.AddDomain(model.NewDomain(dd.ID, dd.Name, dd.Description, dd.FrameworkID))
		}
		for _, cd := range fd.Controls {
			fw.AddControl(restoreControl(cd))
		}
		e.RegisterFramework(fw)
	}

	for _, md := range snap.Mappings {
		e.AppendMapping(&model.Mapping{
			SourceFramework: md.SourceFramework,
			SourceControl:   md.SourceControl,
			TargetFramework: md.TargetFramework,
			TargetControl:   md.TargetControl,
			Type:            md.MappingType,
			Confidence:      md.Confidence,
			Notes:           md.Notes,
			Verified:        md.Verified,
			LastUpdated:     md.LastUpdated,
		})
	}

	e.RebuildIndexes()
}

func controlData(c *model.Control) ControlData {
	return ControlData{
		ID:                     c.ID,
		Title:                  c.Title,
		Description:            c.Description,
		FrameworkID:            c.FrameworkID,
		DomainID:               c.DomainID,
		Requirements:           c.Requirements,
		ImplementationGuidance: c.ImplementationGuidance,
		TestingProcedures:      c.TestingProcedures,
		RiskLevel:              c.RiskLevel,
		ControlType:            c.ControlType,
		Tags:                   c.Tags,
		Mappings:               c.Mappings,
	}
}

func restoreControl(cd ControlData) *model.Control {
	return &model.Control{
		ID:                     cd.ID,
		Title:                  cd.Title,
		Description:            cd.Description,
		FrameworkID:            cd.FrameworkID,
		DomainID:               cd.DomainID,
		Requirements:           cd.Requirements,
		ImplementationGuidance: cd.ImplementationGuidance,
		TestingProcedures:      cd.TestingProcedures,
		RiskLevel:              cd.RiskLevel,
		ControlType:            cd.ControlType,
		Tags:                   cd.Tags,
		Mappings:               cd.Mappings,
	}
}
