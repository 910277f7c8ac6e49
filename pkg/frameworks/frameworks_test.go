package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func TestBuiltinFrameworkShapes(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *model.Framework
		id       string
		controls int
		domains  int
	}{
		{"soc2", SOC2, "soc2", 12, 5},
		{"iso27001", ISO27001, "iso27001", 14, 8},
		{"nist-csf", NISTCSF, "nist-csf", 15, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := tt.build()
			assert.Equal(t, tt.id, fw.ID)
			assert.Equal(t, tt.controls, fw.ControlCount())
			assert.Equal(t, tt.domains, fw.DomainCount())
		})
	}
}

func TestBuiltinControlsComplete(t *testing.T) {
	for _, fw := range []*model.Framework{SOC2(), ISO27001(), NISTCSF()} {
		for _, c := range fw.Controls() {
			require.NotEmpty(t, c.ID, "%s control missing ID", fw.ID)
			assert.NotEmpty(t, c.Title, "%s/%s missing title", fw.ID, c.ID)
			assert.NotEmpty(t, c.Description, "%s/%s missing description", fw.ID, c.ID)
			assert.Equal(t, fw.ID, c.FrameworkID, "%s/%s wrong framework id", fw.ID, c.ID)
			assert.True(t, c.RiskLevel.IsValid(), "%s/%s invalid risk level %q", fw.ID, c.ID, c.RiskLevel)
			assert.True(t, c.ControlType.IsValid(), "%s/%s invalid control type %q", fw.ID, c.ID, c.ControlType)
		}
	}
}

func TestBuiltinDualRegistration(t *testing.T) {
	for _, fw := range []*model.Framework{SOC2(), ISO27001(), NISTCSF()} {
		inDomains := 0
		for _, d := range fw.Domains() {
			for _, c := range d.Controls() {
				got, ok := fw.Control(c.ID)
				require.True(t, ok, "%s domain %s holds unregistered control %s", fw.ID, d.ID, c.ID)
				assert.Same(t, got, c, "%s/%s domain and framework must share one instance", fw.ID, c.ID)
				inDomains++
			}
		}
		assert.Equal(t, fw.ControlCount(), inDomains, "%s: every control should belong to a domain", fw.ID)
	}
}

func TestSeededEngine(t *testing.T) {
	e := NewSeededEngine()

	require.Len(t, e.Frameworks(), 3)
	require.Len(t, e.Mappings(), len(baselineMappings))

	// Mappings at confidence 0.8 and above ship verified.
	for _, m := range e.Mappings() {
		assert.Equal(t, m.Confidence >= 0.8, m.Verified,
			"%s/%s -> %s/%s: verified flag inconsistent with confidence %v",
			m.SourceFramework, m.SourceControl, m.TargetFramework, m.TargetControl, m.Confidence)
	}
}

func TestSeededCC61Mappings(t *testing.T) {
	e := NewSeededEngine()

	mappings := e.MappingsForControl("soc2", "CC6.1")
	require.NotEmpty(t, mappings)

	var foundISO, foundNIST bool
	for _, m := range mappings {
		if m.Involves("iso27001", "A.9.1.1") {
			foundISO = true
			assert.Equal(t, model.Related, m.Type)
		}
		if m.Involves("nist-csf", "PR.AC-1") {
			foundNIST = true
			assert.Equal(t, model.Equivalent, m.Type)
		}
	}
	assert.True(t, foundISO, "CC6.1 should map to ISO 27001 A.9.1.1")
	assert.True(t, foundNIST, "CC6.1 should map to NIST CSF PR.AC-1")
}

func TestSeededMatrixShape(t *testing.T) {
	e := NewSeededEngine()

	matrix, err := e.ComplianceMatrix()
	require.NoError(t, err)

	require.Len(t, matrix.Matrix, 3)
	for source, row := range matrix.Matrix {
		assert.Len(t, row, 2, "row %s", source)
	}
}

func TestSeedBaselineEndpointsResolve(t *testing.T) {
	e := NewSeededEngine()

	for _, bm := range baselineMappings {
		src, ok := e.Framework(bm.sourceFW)
		require.True(t, ok, "unknown source framework %s", bm.sourceFW)
		_, ok = src.Control(bm.sourceCtrl)
		assert.True(t, ok, "%s: no control %s", bm.sourceFW, bm.sourceCtrl)

		tgt, ok := e.Framework(bm.targetFW)
		require.True(t, ok, "unknown target framework %s", bm.targetFW)
		_, ok = tgt.Control(bm.targetCtrl)
		assert.True(t, ok, "%s: no control %s", bm.targetFW, bm.targetCtrl)
	}
}
