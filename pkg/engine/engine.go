// Package engine implements the mapping engine: the framework
// registry, the cross-framework mapping list, and the analysis
// operations built on them (gap analysis, compliance matrices,
// similarity search).
//
// An Engine is an explicit instance constructed once and passed by
// reference to consumers; there is no package-level state. All
// operations are synchronous, in-memory computations. The engine is
// not safe for concurrent mutation: a multi-threaded caller must add
// its own synchronization around AddMapping and Mapping.Verify.
package engine

import (
	"fmt"
	"time"

	"github.com/complymap/complymap/pkg/model"
)

// Engine owns the framework registry and the mapping list.
type Engine struct {
	frameworks map[string]*model.Framework
	order      []string
	mappings   []*model.Mapping
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		frameworks: make(map[string]*model.Framework),
	}
}

// RegisterFramework inserts or replaces the framework under its ID.
// Duplicate registration is not an error: last write wins, keeping
// the original registration position. Callers are responsible for
// avoiding accidental ID collisions.
func (e *Engine) RegisterFramework(fw *model.Framework) {
	if _, ok := e.frameworks[fw.ID]; !ok {
		e.order = append(e.order, fw.ID)
	}
	e.frameworks[fw.ID] = fw
}

// Framework returns a registered framework by ID.
func (e *Engine) Framework(id string) (*model.Framework, bool) {
	fw, ok := e.frameworks[id]
	return fw, ok
}

// Frameworks returns all registered frameworks in registration order.
func (e *Engine) Frameworks() []*model.Framework {
	out := make([]*model.Framework, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.frameworks[id])
	}
	return out
}

// FrameworkIDs returns the registered framework IDs in registration
// order.
func (e *Engine) FrameworkIDs() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Mappings returns the full mapping list in insertion order.
// The returned slice shares backing storage with the engine; callers
// must not reorder it.
func (e *Engine) Mappings() []*model.Mapping {
	return e.mappings
}

// AddMapping records a mapping between two controls and returns it.
// Confidence outside [0, 1] fails with ErrInvalidConfidence.
//
// Neither framework nor control is required to exist: the mapping is
// appended to the global list regardless, and the denormalized
// per-control index is updated only for the endpoints that resolve.
// MappingsForControl still finds such mappings (it scans the global
// list), but Control.MappingsTo will be incomplete for them; see
// RebuildIndexes.
func (e *Engine) AddMapping(sourceFW, sourceControl, targetFW, targetControl string, mappingType model.MappingType, confidence float64) (*model.Mapping, error) {
	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfidence, confidence)
	}

	m := &model.Mapping{
		SourceFramework: sourceFW,
		SourceControl:   sourceControl,
		TargetFramework: targetFW,
		TargetControl:   targetControl,
		Type:            mappingType,
		Confidence:      confidence,
		LastUpdated:     time.Now(),
	}
	e.mappings = append(e.mappings, m)

	if fw, ok := e.frameworks[sourceFW]; ok {
		if c, ok := fw.Control(sourceControl); ok {
			c.AddMapping(targetFW, targetControl, mappingType, confidence)
		}
	}
	if fw, ok := e.frameworks[targetFW]; ok {
		if c, ok := fw.Control(targetControl); ok {
			c.AddMapping(sourceFW, sourceControl, mappingType, confidence)
		}
	}

	return m, nil
}

// AppendMapping appends an already-constructed mapping to the global
// list without touching any per-control index. Intended for bulk
// import paths that restore serialized mappings verbatim; follow up
// with RebuildIndexes to make the per-control views consistent.
func (e *Engine) AppendMapping(m *model.Mapping) {
	e.mappings = append(e.mappings, m)
}

// MappingsForControl returns every mapping in which the given
// (framework, control) pair appears as either endpoint, in insertion
// order. A pair that resolves to nothing yields an empty result, not
// an error.
func (e *Engine) MappingsForControl(frameworkID, controlID string) []*model.Mapping {
	var out []*model.Mapping
	for _, m := range e.mappings {
		if m.Involves(frameworkID, controlID) {
			out = append(out, m)
		}
	}
	return out
}

// MappingsBetween returns every mapping connecting the two
// frameworks. Storage direction is not semantically significant:
// mappings recorded in either direction count.
func (e *Engine) MappingsBetween(fw1, fw2 string) []*model.Mapping {
	var out []*model.Mapping
	for _, m := range e.mappings {
		if m.Between(fw1, fw2) {
			out = append(out, m)
		}
	}
	return out
}

// RebuildIndexes regenerates every control's denormalized mapping
// index from the authoritative mapping list. Run after a bulk import
// to repair per-control views for mappings whose endpoints were
// unresolvable when first recorded.
func (e *Engine) RebuildIndexes() {
	for _, fw := range e.frameworks {
		for _, c := range fw.Controls() {
			c.ResetMappings()
		}
	}
	for _, m := range e.mappings {
		if fw, ok := e.frameworks[m.SourceFramework]; ok {
			if c, ok := fw.Control(m.SourceControl); ok {
				c.AddMapping(m.TargetFramework, m.TargetControl, m.Type, m.Confidence)
			}
		}
		if fw, ok := e.frameworks[m.TargetFramework]; ok {
			if c, ok := fw.Control(m.TargetControl); ok {
				c.AddMapping(m.SourceFramework, m.SourceControl, m.Type, m.Confidence)
			}
		}
	}
}
