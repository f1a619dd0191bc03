package mapping

import (
	"sort"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
)

// TransformFunc translates a canonical source value into a destination
// value. It reports false for values it does not recognise.
type TransformFunc func(value string) (string, bool)

// Transform is a named, documented TransformFunc.
type Transform struct {
	Name        string
	Description string
	Func        TransformFunc
}

// Apply runs the transform.
func (t *Transform) Apply(value string) (string, bool) {
	return t.Func(value)
}

// ValueMap returns a transform that looks value up in m.
func ValueMap(m map[string]string) TransformFunc {
	return func(value string) (string, bool) {
		out, ok := m[value]
		return out, ok
	}
}

// Passthrough returns a transform that keeps values the destination catalog
// already knows under the same id.
func Passthrough(dest *catalog.Catalog) TransformFunc {
	return func(value string) (string, bool) {
		if dest == nil || !dest.Has(value) {
			return "", false
		}

		return value, true
	}
}

// TransformRegistry holds transforms by name.
type TransformRegistry struct {
	transforms map[string]*Transform
}

// NewTransformRegistry creates a new empty transform registry.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{
		transforms: make(map[string]*Transform),
	}
}

// Add adds a transform to the registry, replacing any with the same name.
func (r *TransformRegistry) Add(t *Transform) {
	r.transforms[t.Name] = t
}

// Get returns a transform by name, or nil if not found.
func (r *TransformRegistry) Get(name string) *Transform {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *TransformRegistry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *TransformRegistry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Built-in transform names.
const (
	TransformGravityToPlanetType   = "gravity-to-planet-type"
	TransformSlowRotationToDay     = "slow-rotation-to-day"
	TransformFastRotationToDay     = "fast-rotation-to-day"
	TransformMultiplicityToStellar = "multiplicity-to-stellar"
	TransformStarTypeToStellar     = "star-type-to-stellar"
	TransformTiltToSeasonality     = "tilt-to-seasonality"
	TransformDensityToAtmosphere   = "density-to-atmosphere"
	TransformWaterToHydrosphere    = "water-to-hydrosphere"
	TransformMoonsToMoonSystem     = "moons-to-moon-system"
	TransformFieldToMagnetosphere  = "field-to-magnetosphere"
)

// DefaultTransforms returns the built-in transforms. Passthrough transforms
// check values against the destination catalogs in set.
func DefaultTransforms(set *catalog.Set) *TransformRegistry {
	dest := func(name string) *catalog.Catalog {
		c, _ := set.Get(name)
		return c
	}

	r := NewTransformRegistry()

	r.Add(&Transform{
		Name:        TransformGravityToPlanetType,
		Description: "Heavier worlds are larger rocky planets.",
		Func: ValueMap(map[string]string{
			"low":        "dwarf",
			"earth-like": "terrestrial",
			"high":       "super-earth",
			"extreme":    "mega-earth",
		}),
	})
	r.Add(&Transform{
		Name:        TransformSlowRotationToDay,
		Description: "Slow spin lengthens the day until it locks.",
		Func: ValueMap(map[string]string{
			"slow":           "long",
			"very-slow":      "very-long",
			"tidally-locked": "locked",
		}),
	})
	r.Add(&Transform{
		Name:        TransformFastRotationToDay,
		Description: "Fast spin shortens the day.",
		Func: ValueMap(map[string]string{
			"fast":      "short",
			"very-fast": "very-short",
		}),
	})
	r.Add(&Transform{
		Name:        TransformMultiplicityToStellar,
		Description: "Star count carries over unchanged.",
		Func:        Passthrough(dest(catalog.StellarEnvironments)),
	})
	r.Add(&Transform{
		Name:        TransformStarTypeToStellar,
		Description: "Spectral class carries over unchanged.",
		Func:        Passthrough(dest(catalog.StellarEnvironments)),
	})
	r.Add(&Transform{
		Name:        TransformTiltToSeasonality,
		Description: "Axial tilt sets how strong the seasons are.",
		Func: ValueMap(map[string]string{
			"none":     "none",
			"moderate": "earth-like",
			"extreme":  "extreme",
			"chaotic":  "chaotic",
		}),
	})
	r.Add(&Transform{
		Name:        TransformDensityToAtmosphere,
		Description: "Surface pressure names the atmosphere class.",
		Func: ValueMap(map[string]string{
			"thin":       "thin",
			"earth-like": "earth-like",
			"thick":      "dense",
			"crushing":   "crushing",
		}),
	})
	r.Add(&Transform{
		Name:        TransformWaterToHydrosphere,
		Description: "Water coverage names the hydrosphere class.",
		Func: ValueMap(map[string]string{
			"none":       "none",
			"arid":       "arid",
			"earth-like": "temperate",
			"ocean":      "global-ocean",
		}),
	})
	r.Add(&Transform{
		Name:        TransformMoonsToMoonSystem,
		Description: "Moon count names the satellite system.",
		Func: ValueMap(map[string]string{
			"none":   "none",
			"single": "single",
			"many":   "multiple",
			"rings":  "ringed",
		}),
	})
	r.Add(&Transform{
		Name:        TransformFieldToMagnetosphere,
		Description: "Field strength carries over unchanged.",
		Func:        Passthrough(dest(catalog.Magnetospheres)),
	})

	return r
}
