// Package frameworks holds the built-in framework definitions: a
// reference subset of SOC 2, ISO 27001, and NIST CSF controls, plus
// the baseline cross-framework mappings between them.
//
// Each framework is produced by a no-argument factory returning a
// fully populated model.Framework; the engine treats these as opaque
// producers and consumes them through RegisterFramework. The control
// lists are a curated subset for mapping and gap-analysis work, not
// the complete standards.
package frameworks
