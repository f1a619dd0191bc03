package mapping

import (
	"time"
)

// LinkKey is the destination worksheet key holding the import link marker.
const LinkKey = "importLink"

// PlanetPatch is a destination-shaped planet worksheet fragment. Every
// field is always present; unset fields are the empty string.
type PlanetPatch struct {
	PlanetType         string `json:"planetType"`
	DayNightCycle      string `json:"dayNightCycle"`
	StellarEnvironment string `json:"stellarEnvironment"`
	Seasonality        string `json:"seasonality"`
	Atmosphere         string `json:"atmosphere"`
	Hydrosphere        string `json:"hydrosphere"`
	MoonSystem         string `json:"moonSystem"`
	Magnetosphere      string `json:"magnetosphere"`
}

func (p *PlanetPatch) slot(f Field) *string {
	switch f {
	case FieldPlanetType:
		return &p.PlanetType
	case FieldDayNightCycle:
		return &p.DayNightCycle
	case FieldStellarEnvironment:
		return &p.StellarEnvironment
	case FieldSeasonality:
		return &p.Seasonality
	case FieldAtmosphere:
		return &p.Atmosphere
	case FieldHydrosphere:
		return &p.Hydrosphere
	case FieldMoonSystem:
		return &p.MoonSystem
	case FieldMagnetosphere:
		return &p.Magnetosphere
	default:
		return nil
	}
}

// Set overwrites the field. Invalid fields are ignored.
func (p *PlanetPatch) Set(f Field, value string) {
	if s := p.slot(f); s != nil {
		*s = value
	}
}

// Get returns the field's value.
func (p PlanetPatch) Get(f Field) string {
	if s := p.slot(f); s != nil {
		return *s
	}

	return ""
}

// IsEmpty returns true if no field is set.
func (p PlanetPatch) IsEmpty() bool {
	return p == PlanetPatch{}
}

// Values returns the set fields keyed by JSON key.
func (p PlanetPatch) Values() map[string]string {
	out := make(map[string]string)

	for _, f := range Fields {
		if v := p.Get(f); v != "" {
			out[f.String()] = v
		}
	}

	return out
}

// Link records which worksheet a destination was imported from. It is
// display metadata; nothing resyncs through it.
type Link struct {
	SourceWorksheetID string    `json:"sourceWorksheetId"`
	SyncedAt          time.Time `json:"syncedAt"`
}

// ImportResult is the outcome of BuildPatch.
type ImportResult struct {
	Patch PlanetPatch `json:"patch"`
	Link  *Link       `json:"link,omitempty"`
}

// Merge returns a shallow copy of dst with the patch's set fields written
// over it and, if present, the link marker under LinkKey. Fields the patch
// leaves empty keep their destination value. dst is not modified.
func (r ImportResult) Merge(dst map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(Fields)+1)
	for k, v := range dst {
		out[k] = v
	}

	for k, v := range r.Patch.Values() {
		out[k] = v
	}

	if r.Link != nil {
		out[LinkKey] = map[string]any{
			"sourceWorksheetId": r.Link.SourceWorksheetID,
			"syncedAt":          r.Link.SyncedAt.UTC().Format(time.RFC3339),
		}
	}

	return out
}
