package frameworks

import (
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
)

// baseline cross-framework mappings shipped with the tool.
var baselineMappings = []struct {
	sourceFW, sourceCtrl string
	targetFW, targetCtrl string
	mappingType          model.MappingType
	confidence           float64
}{
	// SOC 2 to ISO 27001
	{"soc2", "CC1.1", "iso27001", "A.5.1.1", model.Equivalent, 0.9},
	{"soc2", "CC6.1", "iso27001", "A.9.1.1", model.Related, 0.8},
	{"soc2", "CC6.2", "iso27001", "A.9.2.1", model.Equivalent, 0.9},
	{"soc2", "CC7.1", "iso27001", "A.12.6.1", model.Related, 0.7},

	// SOC 2 to NIST CSF
	{"soc2", "CC6.1", "nist-csf", "PR.AC-1", model.Equivalent, 0.9},
	{"soc2", "CC7.1", "nist-csf", "DE.CM-1", model.Equivalent, 0.8},
	{"soc2", "CC1.1", "nist-csf", "ID.GV-1", model.Related, 0.7},

	// ISO 27001 to NIST CSF
	{"iso27001", "A.8.1.1", "nist-csf", "ID.AM-1", model.Equivalent, 0.9},
	{"iso27001", "A.9.1.1", "nist-csf", "PR.AC-1", model.Related, 0.8},
	{"iso27001", "A.10.1.1", "nist-csf", "PR.DS-1", model.Related, 0.7},
	{"iso27001", "A.12.6.1", "nist-csf", "ID.RA-1", model.Equivalent, 0.8},
}

// Seed registers the three built-in frameworks and loads the baseline
// mappings between them. Mappings with confidence of 0.8 or higher
// are marked verified — they come from published crosswalks; the rest
// are analyst suggestions awaiting review.
//
// All baseline data is static and in range, so AddMapping cannot fail
// here; Seed panics if it ever does, which would mean the baseline
// table itself is broken.
func Seed(e *engine.Engine) {
	e.RegisterFramework(SOC2())
	e.RegisterFramework(ISO27001())
	e.RegisterFramework(NISTCSF())

	for _, bm := range baselineMappings {
		m, err := e.AddMapping(bm.sourceFW, bm.sourceCtrl, bm.targetFW, bm.targetCtrl, bm.mappingType, bm.confidence)
		if err != nil {
			panic("frameworks: baseline mapping rejected: " + err.Error())
		}
		if m.Confidence >= 0.8 {
			m.Verify()
		}
	}
}

// NewSeededEngine builds an engine preloaded with the built-in
// frameworks and baseline mappings.
func NewSeededEngine() *engine.Engine {
	e := engine.New()
	Seed(e)
	return e
}
