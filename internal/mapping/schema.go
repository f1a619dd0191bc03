package mapping

// MappingFile is the root of a YAML rule override file.
type MappingFile struct {
	// Version of the override schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Rules add or replace table rules, keyed by category.
	Rules []RuleDef `yaml:"rules"`
}

// RuleDef is one rule as written in YAML. Exactly one of Transform and
// Values must be set.
type RuleDef struct {
	// Category is the source parameter-types id.
	Category string `yaml:"category"`

	// Field is the destination JSON key (e.g. "planetType").
	Field string `yaml:"field"`

	// Transform names a registered transform.
	Transform string `yaml:"transform,omitempty"`

	// Values is an inline source -> destination value table.
	Values map[string]string `yaml:"values,omitempty"`

	// Description is shown in rule listings.
	Description string `yaml:"description,omitempty"`
}
