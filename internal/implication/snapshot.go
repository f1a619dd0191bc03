package implication

import (
	"encoding/json"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
)

// Snapshot is the part of a mythology worksheet the rules read.
type Snapshot struct {
	Biology               Biology               `json:"biology" expr:"biology"`
	CognitiveArchitecture CognitiveArchitecture `json:"cognitiveArchitecture" expr:"cognitiveArchitecture"`
	Environment           Environment           `json:"environment" expr:"environment"`
	Pressures             Pressures             `json:"pressures" expr:"pressures"`
	Pantheon              []Archetype           `json:"pantheon" expr:"pantheon"`
}

// Biology holds physical traits.
type Biology struct {
	Senses    []string          `json:"senses" expr:"senses"`
	Lifespan  catalog.Selection `json:"lifespan" expr:"lifespan"`
	Lifecycle catalog.Selection `json:"lifecycle" expr:"lifecycle"`
	Diet      catalog.Selection `json:"diet" expr:"diet"`
}

// CognitiveArchitecture holds how the species thinks and remembers.
type CognitiveArchitecture struct {
	ConsciousnessType catalog.Selection `json:"consciousnessType" expr:"consciousnessType"`
	MemoryInheritance catalog.Selection `json:"memoryInheritance" expr:"memoryInheritance"`
}

// Environment holds the world the species evolved on.
type Environment struct {
	PlanetType         catalog.Selection `json:"planetType" expr:"planetType"`
	StellarEnvironment catalog.Selection `json:"stellarEnvironment" expr:"stellarEnvironment"`
	DayNightCycle      catalog.Selection `json:"dayNightCycle" expr:"dayNightCycle"`
	Seasonality        catalog.Selection `json:"seasonality" expr:"seasonality"`
	Hydrosphere        catalog.Selection `json:"hydrosphere" expr:"hydrosphere"`
	MoonSystem         catalog.Selection `json:"moonSystem" expr:"moonSystem"`
	SkyVisibility      catalog.Selection `json:"skyVisibility" expr:"skyVisibility"`
}

// Pressures holds the selective pressures remembered by the species.
type Pressures struct {
	Predation    catalog.Selection `json:"predation" expr:"predation"`
	Catastrophes []string          `json:"catastrophes" expr:"catastrophes"`
}

// Archetype is one pantheon entry.
type Archetype struct {
	ID                string `json:"id" expr:"id"`
	Name              string `json:"name" expr:"name"`
	Channel           string `json:"channel" expr:"channel"`
	PerceivedConstant string `json:"perceivedConstant" expr:"perceivedConstant"`
	Form              string `json:"form" expr:"form"`
	Origin            string `json:"origin,omitempty" expr:"origin"`
}

// HasSense returns true if id is among the primary senses.
func (b Biology) HasSense(id string) bool {
	return slices.Contains(b.Senses, id)
}

// Suffered returns true if the catastrophe id is in species memory.
func (p Pressures) Suffered(id string) bool {
	return slices.Contains(p.Catastrophes, id)
}

// Decode reads a snapshot out of worksheet JSON. Missing, extra or
// ill-typed fields are treated as absent; Decode never fails.
func Decode(data []byte) Snapshot {
	var s Snapshot

	if !gjson.ValidBytes(data) {
		return s
	}

	root := gjson.ParseBytes(data)

	bio := root.Get("biology")
	s.Biology = Biology{
		Senses:    stringList(bio.Get("senses")),
		Lifespan:  selection(bio.Get("lifespan")),
		Lifecycle: selection(bio.Get("lifecycle")),
		Diet:      selection(bio.Get("diet")),
	}

	cog := root.Get("cognitiveArchitecture")
	s.CognitiveArchitecture = CognitiveArchitecture{
		ConsciousnessType: selection(cog.Get("consciousnessType")),
		MemoryInheritance: selection(cog.Get("memoryInheritance")),
	}

	env := root.Get("environment")
	s.Environment = Environment{
		PlanetType:         selection(env.Get("planetType")),
		StellarEnvironment: selection(env.Get("stellarEnvironment")),
		DayNightCycle:      selection(env.Get("dayNightCycle")),
		Seasonality:        selection(env.Get("seasonality")),
		Hydrosphere:        selection(env.Get("hydrosphere")),
		MoonSystem:         selection(env.Get("moonSystem")),
		SkyVisibility:      selection(env.Get("skyVisibility")),
	}

	pr := root.Get("pressures")
	s.Pressures = Pressures{
		Predation:    selection(pr.Get("predation")),
		Catastrophes: stringList(pr.Get("catastrophes")),
	}

	root.Get("pantheon").ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}

		var a Archetype
		if err := json.Unmarshal([]byte(v.Raw), &a); err == nil {
			s.Pantheon = append(s.Pantheon, a)
		}

		return true
	})

	return s
}

func selection(r gjson.Result) catalog.Selection {
	var sel catalog.Selection

	if !r.Exists() {
		return sel
	}

	// Malformed values decode as an empty selection.
	_ = sel.UnmarshalJSON([]byte(r.Raw))

	return sel
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}

	var out []string

	r.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String && v.Str != "" {
			out = append(out, v.Str)
		}

		return true
	})

	return out
}

// Normalize resolves every categorical answer against the catalogs in set,
// folding stale spellings onto current ids. Ids no catalog knows become
// custom text. List answers keep unknown entries verbatim.
func (s Snapshot) Normalize(set *catalog.Set) Snapshot {
	res := func(name string, sel catalog.Selection) catalog.Selection {
		c, ok := set.Get(name)
		if !ok {
			return sel
		}

		return sel.Resolve(c)
	}

	list := func(name string, ids []string) []string {
		if ids == nil {
			return nil
		}

		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = id
			if resolved, ok := set.Resolve(name, id); ok {
				out[i] = resolved
			}
		}

		return out
	}

	out := s
	out.Biology.Senses = list(catalog.SensoryModalities, s.Biology.Senses)
	out.Biology.Lifespan = res(catalog.Lifespans, s.Biology.Lifespan)
	out.Biology.Lifecycle = res(catalog.Lifecycles, s.Biology.Lifecycle)
	out.Biology.Diet = res(catalog.Diets, s.Biology.Diet)

	out.CognitiveArchitecture.ConsciousnessType = res(catalog.ConsciousnessTypes, s.CognitiveArchitecture.ConsciousnessType)
	out.CognitiveArchitecture.MemoryInheritance = res(catalog.MemoryInheritance, s.CognitiveArchitecture.MemoryInheritance)

	out.Environment.PlanetType = res(catalog.PlanetTypes, s.Environment.PlanetType)
	out.Environment.StellarEnvironment = res(catalog.StellarEnvironments, s.Environment.StellarEnvironment)
	out.Environment.DayNightCycle = res(catalog.DayNightCycles, s.Environment.DayNightCycle)
	out.Environment.Seasonality = res(catalog.Seasonality, s.Environment.Seasonality)
	out.Environment.Hydrosphere = res(catalog.Hydrospheres, s.Environment.Hydrosphere)
	out.Environment.MoonSystem = res(catalog.MoonSystems, s.Environment.MoonSystem)
	out.Environment.SkyVisibility = res(catalog.SkyVisibility, s.Environment.SkyVisibility)

	out.Pressures.Predation = res(catalog.PredationPressure, s.Pressures.Predation)
	out.Pressures.Catastrophes = list(catalog.Catastrophes, s.Pressures.Catastrophes)

	return out
}
