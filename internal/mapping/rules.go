package mapping

// Rule maps one source parameter category onto one destination field.
type Rule struct {
	// Category is the source parameter-types id.
	Category string
	// Field is the destination leaf written by this rule.
	Field Field
	// Transform translates source values into destination values.
	Transform *Transform
}

// Table is an ordered, category-keyed rule set. A Table is read-only after
// construction.
type Table struct {
	rules []*Rule
	index map[string]*Rule
}

// NewTable builds a table. Later rules for the same category replace
// earlier ones in place.
func NewTable(rules ...Rule) *Table {
	t := &Table{index: make(map[string]*Rule, len(rules))}

	for i := range rules {
		t.set(rules[i])
	}

	return t
}

func (t *Table) set(r Rule) {
	if existing, ok := t.index[r.Category]; ok {
		*existing = r
		return
	}

	rule := r
	t.rules = append(t.rules, &rule)
	t.index[r.Category] = &rule
}

// Lookup returns the rule registered for category.
func (t *Table) Lookup(category string) (*Rule, bool) {
	r, ok := t.index[category]
	return r, ok
}

// Rules returns the rules in registration order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = *r
	}

	return out
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// With returns a new table holding t's rules overlaid with overrides.
func (t *Table) With(overrides ...Rule) *Table {
	return NewTable(append(t.Rules(), overrides...)...)
}

// DefaultTable returns the built-in speculative-parameter to planet rules.
func DefaultTable(registry *TransformRegistry) *Table {
	return NewTable(
		Rule{Category: "gravity", Field: FieldPlanetType, Transform: registry.Get(TransformGravityToPlanetType)},
		Rule{Category: "rotation-slow", Field: FieldDayNightCycle, Transform: registry.Get(TransformSlowRotationToDay)},
		Rule{Category: "rotation-fast", Field: FieldDayNightCycle, Transform: registry.Get(TransformFastRotationToDay)},
		Rule{Category: "stellar-binary", Field: FieldStellarEnvironment, Transform: registry.Get(TransformMultiplicityToStellar)},
		Rule{Category: "stellar-type", Field: FieldStellarEnvironment, Transform: registry.Get(TransformStarTypeToStellar)},
		Rule{Category: "axial-tilt", Field: FieldSeasonality, Transform: registry.Get(TransformTiltToSeasonality)},
		Rule{Category: "atmosphere-density", Field: FieldAtmosphere, Transform: registry.Get(TransformDensityToAtmosphere)},
		Rule{Category: "water-coverage", Field: FieldHydrosphere, Transform: registry.Get(TransformWaterToHydrosphere)},
		Rule{Category: "moon-count", Field: FieldMoonSystem, Transform: registry.Get(TransformMoonsToMoonSystem)},
		Rule{Category: "magnetic-field", Field: FieldMagnetosphere, Transform: registry.Get(TransformFieldToMagnetosphere)},
	)
}
