package model

// Domain is a grouping of controls within a framework (a SOC 2 trust
// category, an ISO 27001 Annex A clause, a NIST CSF function). It
// records membership only; control lifecycle belongs to the
// framework, and Framework.AddControl keeps the two in sync.
type Domain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FrameworkID string `json:"framework_id"`

	controls map[string]*Control
	order    []string
}

// NewDomain creates an empty domain owned by the given framework.
func NewDomain(id, name, description, frameworkID string) *Domain {
	return &Domain{
		ID:          id,
		Name:        name,
		Description: description,
		FrameworkID: frameworkID,
		controls:    make(map[string]*Control),
	}
}

// AddControl records a control as a member of this domain.
// Normally called through Framework.AddControl, not directly.
func (d *Domain) AddControl(c *Control) {
	if d.controls == nil {
		d.controls = make(map[string]*Control)
	}
	if _, ok := d.controls[c.ID]; !ok {
		d.order = append(d.order, c.ID)
	}
	d.controls[c.ID] = c
}

// Control returns a member control by ID.
func (d *Domain) Control(id string) (*Control, bool) {
	c, ok := d.controls[id]
	return c, ok
}

// Controls returns the member controls in insertion order.
func (d *Domain) Controls() []*Control {
	out := make([]*Control, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.controls[id])
	}
	return out
}

// Framework is a named compliance standard composed of domains and
// controls. Framework IDs are globally unique across an engine
// registry; control IDs are unique within their framework only.
type Framework struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`

	domains     map[string]*Domain
	domainOrder []string

	controls     map[string]*Control
	controlOrder []string
}

// NewFramework creates an empty framework.
func NewFramework(id, name, version, description string) *Framework {
	return &Framework{
		ID:          id,
		Name:        name,
		Version:     version,
		Description: description,
		domains:     make(map[string]*Domain),
		controls:    make(map[string]*Control),
	}
}

// AddDomain registers a domain under its ID.
func (f *Framework) AddDomain(d *Domain) {
	if f.domains == nil {
		f.domains = make(map[string]*Domain)
	}
	if _, ok := f.domains[d.ID]; !ok {
		f.domainOrder = append(f.domainOrder, d.ID)
	}
	f.domains[d.ID] = d
}

// AddControl registers a control under its ID and, when the control
// names an existing domain, records it in that domain's member set.
// This is the single write path for the dual registration; callers
// must not add controls to domains directly.
func (f *Framework) AddControl(c *Control) {
	if f.controls == nil {
		f.controls = make(map[string]*Control)
	}
	if _, ok := f.controls[c.ID]; !ok {
		f.controlOrder = append(f.controlOrder, c.ID)
	}
	f.controls[c.ID] = c

	if c.DomainID != "" {
		if d, ok := f.domains[c.DomainID]; ok {
			d.AddControl(c)
		}
	}
}

// Control returns a control by ID.
func (f *Framework) Control(id string) (*Control, bool) {
	c, ok := f.controls[id]
	return c, ok
}

// Controls returns all controls in insertion order.
func (f *Framework) Controls() []*Control {
	out := make([]*Control, 0, len(f.controlOrder))
	for _, id := range f.controlOrder {
		out = append(out, f.controls[id])
	}
	return out
}

// ControlCount returns the number of registered controls.
func (f *Framework) ControlCount() int {
	return len(f.controlOrder)
}

// Domain returns a domain by ID.
func (f *Framework) Domain(id string) (*Domain, bool) {
	d, ok := f.domains[id]
	return d, ok
}

// Domains returns all domains in insertion order.
func (f *Framework) Domains() []*Domain {
	out := make([]*Domain, 0, len(f.domainOrder))
	for _, id := range f.domainOrder {
		out = append(out, f.domains[id])
	}
	return out
}

// DomainCount returns the number of registered domains.
func (f *Framework) DomainCount() int {
	return len(f.domainOrder)
}
