package mapping

import (
	"fmt"
	"sort"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/diagnostic"
)

// BuildRules validates a MappingFile against the registry and catalogs and
// returns the rules it defines. Rules with errors are left out.
func BuildRules(mf *MappingFile, registry *TransformRegistry, set *catalog.Set) ([]Rule, diagnostic.Diagnostics) {
	var (
		rules []Rule
		diags diagnostic.Diagnostics
	)

	if mf.Version != "1" {
		diags.AddError("unsupported_version", fmt.Sprintf("unsupported mapping version %q", mf.Version), "", "")
		return nil, diags
	}

	params, _ := set.Get(catalog.ParameterTypes)

	for i := range mf.Rules {
		def := &mf.Rules[i]

		rule, ok := buildRule(&diags, def, registry, params, set)
		if ok {
			rules = append(rules, rule)
		}
	}

	return rules, diags
}

func buildRule(
	diags *diagnostic.Diagnostics,
	def *RuleDef,
	registry *TransformRegistry,
	params *catalog.Catalog,
	set *catalog.Set,
) (Rule, bool) {
	valid := true

	if def.Category == "" {
		diags.AddError("missing_category", "rule must specify a category", "", def.Field)
		valid = false
	} else if params != nil && !params.Has(def.Category) {
		diags.AddWarning("unknown_category",
			fmt.Sprintf("category %q is not a known parameter type", def.Category), def.Category, def.Field)
	}

	field, ok := ParseField(def.Field)
	if !ok {
		diags.AddError("invalid_field", fmt.Sprintf("unknown destination field %q", def.Field), def.Category, def.Field)
		valid = false
	}

	var transform *Transform

	switch {
	case def.Transform != "" && len(def.Values) > 0:
		diags.AddError("ambiguous_transform", "rule sets both transform and values", def.Category, def.Field)
		valid = false
	case def.Transform != "":
		transform = registry.Get(def.Transform)
		if transform == nil {
			diags.AddError("unknown_transform", fmt.Sprintf("transform %q is not registered", def.Transform),
				def.Category, def.Field)
			valid = false
		}
	case len(def.Values) > 0:
		transform = &Transform{
			Name:        def.Category + "-to-" + def.Field,
			Description: def.Description,
			Func:        ValueMap(def.Values),
		}

		if field.IsValid() {
			checkValues(diags, def, field, set)
		}
	default:
		diags.AddError("missing_transform", "rule must set transform or values", def.Category, def.Field)
		valid = false
	}

	if !valid {
		return Rule{}, false
	}

	return Rule{Category: def.Category, Field: field, Transform: transform}, true
}

// checkValues warns about inline values the destination catalog does not know.
func checkValues(diags *diagnostic.Diagnostics, def *RuleDef, field Field, set *catalog.Set) {
	dest, ok := set.Get(field.Catalog())
	if !ok {
		return
	}

	keys := make([]string, 0, len(def.Values))
	for k := range def.Values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		v := def.Values[k]
		if !dest.Has(v) {
			diags.AddWarning("unknown_value",
				fmt.Sprintf("%s: %q is not in catalog %s", k, v, dest.Name), def.Category, def.Field)
		}
	}
}
