package mapping

import (
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/common"
)

// Field is a scalar leaf of the planet worksheet that the importer can write.
type Field int

const (
	FieldNone Field = iota // zero value, never a valid target
	FieldPlanetType
	FieldDayNightCycle
	FieldStellarEnvironment
	FieldSeasonality
	FieldAtmosphere
	FieldHydrosphere
	FieldMoonSystem
	FieldMagnetosphere
)

// Fields lists every valid destination field in worksheet order.
var Fields = []Field{
	FieldPlanetType,
	FieldDayNightCycle,
	FieldStellarEnvironment,
	FieldSeasonality,
	FieldAtmosphere,
	FieldHydrosphere,
	FieldMoonSystem,
	FieldMagnetosphere,
}

// String returns the worksheet JSON key for the field.
func (f Field) String() string {
	switch f {
	case FieldPlanetType:
		return "planetType"
	case FieldDayNightCycle:
		return "dayNightCycle"
	case FieldStellarEnvironment:
		return "stellarEnvironment"
	case FieldSeasonality:
		return "seasonality"
	case FieldAtmosphere:
		return "atmosphere"
	case FieldHydrosphere:
		return "hydrosphere"
	case FieldMoonSystem:
		return "moonSystem"
	case FieldMagnetosphere:
		return "magnetosphere"
	default:
		return common.UnknownStr
	}
}

// Catalog returns the name of the catalog the field's values come from.
func (f Field) Catalog() string {
	switch f {
	case FieldPlanetType:
		return catalog.PlanetTypes
	case FieldDayNightCycle:
		return catalog.DayNightCycles
	case FieldStellarEnvironment:
		return catalog.StellarEnvironments
	case FieldSeasonality:
		return catalog.Seasonality
	case FieldAtmosphere:
		return catalog.Atmospheres
	case FieldHydrosphere:
		return catalog.Hydrospheres
	case FieldMoonSystem:
		return catalog.MoonSystems
	case FieldMagnetosphere:
		return catalog.Magnetospheres
	default:
		return ""
	}
}

// IsValid returns true for a writable destination field.
func (f Field) IsValid() bool {
	return f > FieldNone && f <= FieldMagnetosphere
}

// ParseField returns the field with the given JSON key.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if f.String() == s {
			return f, true
		}
	}

	return FieldNone, false
}
