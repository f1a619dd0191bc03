// Package mapping implements the cross-tool parameter importer: it reads the
// parameter section of a speculative-parameter worksheet and maps each
// selected category/value pair onto a field of the planet worksheet.
//
// The rule table is typed. Each Rule binds a source category id to a
// destination Field and a named Transform that translates the source
// vocabulary into the destination catalog's vocabulary:
//
//	gravity         -> planetType          (high -> super-earth)
//	rotation-slow   -> dayNightCycle       (slow -> long)
//	stellar-binary  -> stellarEnvironment  (binary -> binary)
//
// # Source shape
//
// The parameter section has two selection modes:
//
//	{"parameter": {"mode": "single", "type": "gravity", "specificValue": "high"}}
//	{"parameter": {"mode": "multiple",
//	               "types": ["rotation-slow", "stellar-binary"],
//	               "specificValues": {"rotation-slow": "slow", "stellar-binary": "binary"}}}
//
// Source data is read schema-loosely. A missing section, an unknown mode, an
// unmapped category or an unrecognised value contributes nothing; nothing
// here returns an error. Skips are recorded as diagnostics for logging.
//
// # Overrides
//
// Rules may be added or replaced from a YAML file:
//
//	version: "1"
//	rules:
//	  - category: gravity
//	    field: planetType
//	    transform: gravity-to-planet-type
//	  - category: moon-count
//	    field: moonSystem
//	    values: {many: multiple, rings: ringed}
//
// An override naming an unknown field or transform is a load error.
package mapping
