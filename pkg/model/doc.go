// Package model provides the shared compliance data types
// used across all complymap packages.
//
// A Framework owns Domains and Controls; a Mapping is an asserted
// relationship between two controls in different frameworks. The
// engine package operates on these types, the report and export
// packages serialize them.
//
// Usage:
//
//	fw := model.NewFramework("soc2", "SOC 2", "2017", "...")
//	fw.AddDomain(model.NewDomain("security", "Security", "...", "soc2"))
//	fw.AddControl(&model.Control{ID: "CC6.1", DomainID: "security", ...})
package model
