package model

import "testing"

func TestRiskLevelScore(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  int
	}{
		{RiskCritical, 4},
		{RiskHigh, 3},
		{RiskMedium, 2},
		{RiskLow, 1},
		{RiskLevel("unknown"), 0},
		{RiskLevel(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.Score(); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	for _, r := range []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical} {
		if !r.IsValid() {
			t.Errorf("RiskLevel(%q).IsValid() = false", r)
		}
	}
	if RiskLevel("severe").IsValid() {
		t.Error("RiskLevel(\"severe\").IsValid() = true")
	}

	for _, ct := range []ControlType{TypeTechnical, TypeProcedural, TypePhysical} {
		if !ct.IsValid() {
			t.Errorf("ControlType(%q).IsValid() = false", ct)
		}
	}
	if ControlType("administrative").IsValid() {
		t.Error("ControlType(\"administrative\").IsValid() = true")
	}

	for _, mt := range MappingTypes() {
		if !mt.IsValid() {
			t.Errorf("MappingType(%q).IsValid() = false", mt)
		}
	}
	if MappingType("superset").IsValid() {
		t.Error("MappingType(\"superset\").IsValid() = true")
	}
}

func TestControlAddTagDeduplicates(t *testing.T) {
	c := &Control{ID: "CC1.1"}
	c.AddTag("governance")
	c.AddTag("policy")
	c.AddTag("governance")

	if len(c.Tags) != 2 {
		t.Fatalf("Tags = %v, want 2 unique entries", c.Tags)
	}
	if c.Tags[0] != "governance" || c.Tags[1] != "policy" {
		t.Errorf("Tags = %v, want insertion order preserved", c.Tags)
	}
}

func TestControlMappingIndex(t *testing.T) {
	c := &Control{ID: "CC6.1", FrameworkID: "soc2"}

	if got := c.MappingsTo("iso27001"); got != nil {
		t.Fatalf("MappingsTo on empty index = %v, want nil", got)
	}

	c.AddMapping("iso27001", "A.9.1.1", Related, 0.8)
	c.AddMapping("iso27001", "A.9.2.1", Partial, 0.6)
	c.AddMapping("nist-csf", "PR.AC-1", Equivalent, 0.9)

	refs := c.MappingsTo("iso27001")
	if len(refs) != 2 {
		t.Fatalf("MappingsTo(iso27001) = %d entries, want 2", len(refs))
	}
	if refs[0].ControlID != "A.9.1.1" || refs[1].ControlID != "A.9.2.1" {
		t.Errorf("MappingsTo(iso27001) order = %v, want append order", refs)
	}
	if refs[0].MappingType != Related || refs[0].Confidence != 0.8 {
		t.Errorf("first ref = %+v, want related/0.8", refs[0])
	}

	c.ResetMappings()
	if c.MappingsTo("iso27001") != nil {
		t.Error("MappingsTo after ResetMappings should be nil")
	}
}

func TestFrameworkDualRegistration(t *testing.T) {
	fw := NewFramework("soc2", "SOC 2", "2017", "Trust Services Criteria")
	fw.AddDomain(NewDomain("security", "Security", "Common criteria", "soc2"))

	c := &Control{ID: "CC1.1", Title: "Control Environment", FrameworkID: "soc2", DomainID: "security"}
	fw.AddControl(c)

	got, ok := fw.Control("CC1.1")
	if !ok || got != c {
		t.Fatal("control not registered at framework level")
	}
	d, _ := fw.Domain("security")
	if dc, ok := d.Control("CC1.1"); !ok || dc != c {
		t.Fatal("control not registered in its domain")
	}
	if fw.ControlCount() != 1 {
		t.Errorf("ControlCount = %d, want 1 (dual registration must not double count)", fw.ControlCount())
	}
}

func TestFrameworkAddControlUnknownDomain(t *testing.T) {
	fw := NewFramework("soc2", "SOC 2", "2017", "")
	fw.AddControl(&Control{ID: "CC9.9", DomainID: "nonexistent"})

	if _, ok := fw.Control("CC9.9"); !ok {
		t.Fatal("control with unresolvable domain must still register at framework level")
	}
	if fw.DomainCount() != 0 {
		t.Errorf("DomainCount = %d, want 0", fw.DomainCount())
	}
}

func TestFrameworkInsertionOrder(t *testing.T) {
	fw := NewFramework("f", "F", "1", "")
	for _, id := range []string{"C3", "C1", "C2"} {
		fw.AddControl(&Control{ID: id})
	}

	var got []string
	for _, c := range fw.Controls() {
		got = append(got, c.ID)
	}
	want := []string{"C3", "C1", "C2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Controls() order = %v, want %v", got, want)
		}
	}
}

func TestMappingVerify(t *testing.T) {
	m := &Mapping{SourceFramework: "soc2", SourceControl: "CC1.1", TargetFramework: "iso27001", TargetControl: "A.5.1.1"}
	if m.Verified {
		t.Fatal("new mapping must start unverified")
	}
	before := m.LastUpdated
	m.Verify()
	if !m.Verified {
		t.Error("Verify did not set Verified")
	}
	if !m.LastUpdated.After(before) {
		t.Error("Verify did not bump LastUpdated")
	}
}

func TestMappingInvolvesAndBetween(t *testing.T) {
	m := &Mapping{SourceFramework: "soc2", SourceControl: "CC6.1", TargetFramework: "iso27001", TargetControl: "A.9.1.1"}

	if !m.Involves("soc2", "CC6.1") || !m.Involves("iso27001", "A.9.1.1") {
		t.Error("Involves must match both endpoints")
	}
	if m.Involves("soc2", "A.9.1.1") {
		t.Error("Involves must not cross framework and control IDs")
	}
	if !m.Between("soc2", "iso27001") || !m.Between("iso27001", "soc2") {
		t.Error("Between must be direction-independent")
	}
	if m.Between("soc2", "nist-csf") {
		t.Error("Between matched an uninvolved framework")
	}
}
