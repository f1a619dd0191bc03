package implication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
)

func TestDecode(t *testing.T) {
	s := Decode([]byte(`{
		"title": "The Vesh",
		"biology": {"senses": ["echolocation", 7, "", "touch"], "lifespan": "long", "wings": true},
		"cognitiveArchitecture": {"consciousnessType": "other", "memoryInheritance": {"other": "dreamed"}},
		"environment": {"planetType": "super-earth", "moonSystem": 3},
		"pressures": {"predation": null, "catastrophes": "impacts"},
		"pantheon": [
			{"id": "a-1", "name": "Mother Deep", "channel": "depth", "extra": 1},
			"not an object",
			{"id": 5}
		]
	}`))

	assert.Equal(t, []string{"echolocation", "touch"}, s.Biology.Senses)
	assert.Equal(t, catalog.Known("long"), s.Biology.Lifespan)
	assert.True(t, s.Biology.Diet.IsZero())

	assert.Equal(t, catalog.Custom(""), s.CognitiveArchitecture.ConsciousnessType)
	assert.Equal(t, catalog.Custom("dreamed"), s.CognitiveArchitecture.MemoryInheritance)

	assert.Equal(t, catalog.Known("super-earth"), s.Environment.PlanetType)
	assert.True(t, s.Environment.MoonSystem.IsZero())

	assert.True(t, s.Pressures.Predation.IsZero())
	assert.Nil(t, s.Pressures.Catastrophes)

	require.Len(t, s.Pantheon, 1)
	assert.Equal(t, Archetype{ID: "a-1", Name: "Mother Deep", Channel: "depth"}, s.Pantheon[0])
}

func TestDecode_Garbage(t *testing.T) {
	for _, data := range []string{``, `{`, `null`, `[]`, `"text"`} {
		t.Run(data, func(t *testing.T) {
			assert.Equal(t, Snapshot{}, Decode([]byte(data)))
		})
	}
}

func TestNormalize(t *testing.T) {
	s := Snapshot{
		Biology: Biology{
			Senses:   []string{"Echolocation", "sonar-of-the-deep"},
			Lifespan: catalog.Known("Near Immortal"),
		},
		Environment: Environment{
			PlanetType:    catalog.Known("hollow-world"),
			SkyVisibility: catalog.Custom("milky"),
		},
		Pressures: Pressures{Catastrophes: []string{"Stellar Flares"}},
	}

	n := s.Normalize(catalog.Default())

	assert.Equal(t, []string{"echolocation", "sonar-of-the-deep"}, n.Biology.Senses)
	assert.Equal(t, catalog.Known("near-immortal"), n.Biology.Lifespan)
	assert.Equal(t, catalog.Custom("hollow-world"), n.Environment.PlanetType)
	assert.Equal(t, catalog.Custom("milky"), n.Environment.SkyVisibility)
	assert.Equal(t, []string{"stellar-flares"}, n.Pressures.Catastrophes)

	// Input untouched
	assert.Equal(t, "Echolocation", s.Biology.Senses[0])
}

func TestHelpers(t *testing.T) {
	b := Biology{Senses: []string{"vision"}}
	assert.True(t, b.HasSense("vision"))
	assert.False(t, b.HasSense("hearing"))

	p := Pressures{Catastrophes: []string{"floods"}}
	assert.True(t, p.Suffered("floods"))
	assert.False(t, p.Suffered("impacts"))
}
