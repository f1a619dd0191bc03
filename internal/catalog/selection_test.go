package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSelection_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Selection
	}{
		{"known", `"hive"`, Known("hive")},
		{"legacy other sentinel", `"other"`, Custom("")},
		{"custom object", `{"other":"a mind of tides"}`, Custom("a mind of tides")},
		{"null", `null`, Selection{}},
		{"empty string", `""`, Selection{}},
		{"number degrades to empty", `42`, Selection{}},
		{"array degrades to empty", `["hive"]`, Selection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSelection_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Selection `json:"a"`
		B Selection `json:"b"`
		C Selection `json:"c"`
	}{Known("hive"), Custom("tidal chorus"), Selection{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"hive","b":{"other":"tidal chorus"},"c":""}`, string(out))
}

func TestSelection_UnmarshalYAML(t *testing.T) {
	var doc struct {
		A Selection `yaml:"a"`
		B Selection `yaml:"b"`
		C Selection `yaml:"c"`
		D Selection `yaml:"d"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("a: hive\nb: other\nc: {other: drifting}\nd: ~\n"), &doc))
	assert.Equal(t, Known("hive"), doc.A)
	assert.Equal(t, Custom(""), doc.B)
	assert.Equal(t, Custom("drifting"), doc.C)
	assert.True(t, doc.D.IsZero())
}

func TestSelection_Predicates(t *testing.T) {
	hive := Known("hive")
	assert.True(t, hive.IsKnown())
	assert.True(t, hive.Is("hive"))
	assert.True(t, hive.In("distributed", "hive"))
	assert.False(t, hive.In("individual"))
	assert.Equal(t, "hive", hive.String())
	assert.Equal(t, "", hive.Text(), "known selections carry no free text")

	custom := Custom("hive")
	assert.True(t, custom.IsCustom())
	assert.False(t, custom.Is("hive"), "custom text never matches a catalog id")
	assert.Equal(t, "", custom.ID())
	assert.Equal(t, "hive", custom.Text())
	assert.Equal(t, "other: hive", custom.String())

	assert.True(t, Selection{}.IsZero())
	assert.False(t, Custom("").IsZero())
}

func TestSelection_Resolve(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, Known("super-earth"), Known("Super Earth").Resolve(c))
	assert.Equal(t, Custom("hollow-world"), Known("hollow-world").Resolve(c))
	assert.Equal(t, "hollow-world", Known("hollow-world").Resolve(c).Text(), "unknown ids survive as free text")
	assert.Equal(t, Custom("x"), Custom("x").Resolve(c))
	assert.Equal(t, Selection{}, Selection{}.Resolve(c))
}
