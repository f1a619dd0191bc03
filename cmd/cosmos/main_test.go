package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/config"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/mapping"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/worksheet"
)

// setup points the CLI globals at an in-memory store.
func setup(t *testing.T) worksheet.Store {
	t.Helper()

	logger = zap.NewNop()

	var err error
	cfg, err = config.Parse(nil)
	require.NoError(t, err)

	s, err := worksheet.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)

	store = s
	jsonOutput = false
	linkImport = false
	archetypeName = ""

	t.Cleanup(func() {
		_ = s.Close()
		store = nil
	})

	return s
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)

	return cmd, &out
}

func addSheet(t *testing.T, s worksheet.Store, id, tool, data string) {
	t.Helper()

	require.NoError(t, s.Create(context.Background(), &worksheet.Worksheet{
		ID:       id,
		WorldID:  "world",
		ToolType: tool,
		Data:     json.RawMessage(data),
	}))
}

func sheetObject(t *testing.T, s worksheet.Store, id string) map[string]any {
	t.Helper()

	w, err := s.Get(context.Background(), id)
	require.NoError(t, err)

	return w.Object()
}

func TestWorksheetCommands(t *testing.T) {
	s := setup(t)

	p := filepath.Join(t.TempDir(), "sheet.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"planetType":"dwarf"}`+"\n"), 0o600))

	toolType, worldID, sheetTitle = worksheet.ToolPlanet, "w1", "Kel"
	defer func() { toolType, worldID, sheetTitle = "", "", "" }()

	cmd, out := testCmd()
	require.NoError(t, runWorksheetAdd(cmd, []string{p}))

	id := strings.TrimSpace(out.String())
	require.NotEmpty(t, id)

	cmd, out = testCmd()
	require.NoError(t, runWorksheetList(cmd, nil))
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), "Kel")

	cmd, out = testCmd()
	require.NoError(t, runWorksheetShow(cmd, []string{id}))
	assert.JSONEq(t, `{"planetType":"dwarf"}`, out.String())

	cmd, _ = testCmd()
	require.NoError(t, runWorksheetRm(cmd, []string{id}))

	_, err := s.Get(context.Background(), id)
	assert.ErrorIs(t, err, worksheet.ErrNotFound)
}

func TestWorksheetAdd_Stdin(t *testing.T) {
	s := setup(t)
	toolType = worksheet.ToolMythology
	defer func() { toolType = "" }()

	cmd, out := testCmd()
	cmd.SetIn(strings.NewReader(`{"biology":{}}`))
	require.NoError(t, runWorksheetAdd(cmd, []string{"-"}))

	obj := sheetObject(t, s, strings.TrimSpace(out.String()))
	assert.Equal(t, map[string]any{"biology": map[string]any{}}, obj)
}

func TestPreview(t *testing.T) {
	s := setup(t)
	addSheet(t, s, "src", worksheet.ToolParameters,
		`{"parameter":{"mode":"single","type":"gravity","specificValue":"high"}}`)

	cmd, out := testCmd()
	require.NoError(t, runPreview(cmd, []string{"src"}))
	assert.Contains(t, out.String(), "planetType")
	assert.Contains(t, out.String(), "super-earth")
	assert.Contains(t, out.String(), "gravity: high")

	addSheet(t, s, "blank", worksheet.ToolParameters, `{}`)

	cmd, out = testCmd()
	require.NoError(t, runPreview(cmd, []string{"blank"}))
	assert.Equal(t, "nothing to import\n", out.String())
}

func TestPreview_JSON(t *testing.T) {
	s := setup(t)
	jsonOutput = true
	addSheet(t, s, "src", worksheet.ToolParameters,
		`{"parameter":{"mode":"multiple","types":["stellar-binary","water-coverage"],`+
			`"specificValues":{"stellar-binary":"binary","water-coverage":"ocean"}}}`)

	cmd, out := testCmd()
	require.NoError(t, runPreview(cmd, []string{"src"}))
	assert.JSONEq(t, `[
		{"field":"stellarEnvironment","value":"binary","from":"stellar-binary: binary"},
		{"field":"hydrosphere","value":"global-ocean","from":"water-coverage: ocean"}
	]`, out.String())
}

func TestImport(t *testing.T) {
	s := setup(t)

	synced := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	now = func() time.Time { return synced }
	defer func() { now = time.Now }()

	addSheet(t, s, "src", worksheet.ToolParameters,
		`{"parameter":{"mode":"single","type":"gravity","specificValue":"high"}}`)
	addSheet(t, s, "dst", worksheet.ToolPlanet, `{"planetType":"dwarf","name":"Kel","hydrosphere":"arid"}`)

	linkImport = true

	cmd, out := testCmd()
	require.NoError(t, runImport(cmd, []string{"src", "dst"}))
	assert.Equal(t, "planetType = super-earth\n", out.String())

	obj := sheetObject(t, s, "dst")
	assert.Equal(t, "super-earth", obj["planetType"])
	assert.Equal(t, "Kel", obj["name"])
	assert.Equal(t, "arid", obj["hydrosphere"])
	assert.Equal(t, map[string]any{
		"sourceWorksheetId": "src",
		"syncedAt":          "2026-05-06T07:08:09Z",
	}, obj["importLink"])
}

func TestImport_NothingToImport(t *testing.T) {
	s := setup(t)
	addSheet(t, s, "src", worksheet.ToolParameters, `{"parameter":{"mode":"single"}}`)
	addSheet(t, s, "dst", worksheet.ToolPlanet, `{"planetType":"dwarf"}`)

	cmd, out := testCmd()
	require.NoError(t, runImport(cmd, []string{"src", "dst"}))
	assert.Equal(t, "nothing to import\n", out.String())
	assert.Equal(t, map[string]any{"planetType": "dwarf"}, sheetObject(t, s, "dst"))
}

func TestImport_MissingWorksheet(t *testing.T) {
	setup(t)

	cmd, _ := testCmd()
	assert.ErrorIs(t, runImport(cmd, []string{"nope", "dst"}), worksheet.ErrNotFound)
}

func TestImport_MappingOverrides(t *testing.T) {
	s := setup(t)

	p := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
rules:
  - category: gravity
    field: planetType
    values:
      high: mega-earth
`), 0o600))
	cfg.MappingsPath = p

	addSheet(t, s, "src", worksheet.ToolParameters,
		`{"parameter":{"mode":"single","type":"gravity","specificValue":"high"}}`)
	addSheet(t, s, "dst", worksheet.ToolPlanet, `{}`)

	cmd, _ := testCmd()
	require.NoError(t, runImport(cmd, []string{"src", "dst"}))
	assert.Equal(t, "mega-earth", sheetObject(t, s, "dst")["planetType"])
}

func TestMappingsCommand(t *testing.T) {
	setup(t)

	cmd, out := testCmd()
	require.NoError(t, runMappings(cmd, nil))

	mf, err := mapping.Parse(out.Bytes())
	require.NoError(t, err)
	require.NotEmpty(t, mf.Rules)
	assert.Equal(t, "gravity", mf.Rules[0].Category)
	assert.Equal(t, mapping.TransformGravityToPlanetType, mf.Rules[0].Transform)

	p := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
rules:
  - category: gravity
    field: planetType
    values:
      high: mega-earth
`), 0o600))
	cfg.MappingsPath = p

	cmd, out = testCmd()
	require.NoError(t, runMappings(cmd, nil))
	assert.Contains(t, out.String(), "transform: gravity-to-planetType")
}

func TestImplicationsAndApply(t *testing.T) {
	s := setup(t)
	addSheet(t, s, "myth", worksheet.ToolMythology,
		`{"cognitiveArchitecture":{"consciousnessType":"hive"},"pantheon":[{"id":"old","name":"Elder","extra":true}]}`)

	cmd, out := testCmd()
	require.NoError(t, runImplications(cmd, []string{"myth"}))
	assert.Contains(t, out.String(), "[hive-mind]")

	archetypeName = "The Chorus"

	cmd, out = testCmd()
	require.NoError(t, runApply(cmd, []string{"myth", "hive-mind"}))
	newID := strings.TrimSpace(out.String())

	pantheon, ok := sheetObject(t, s, "myth")["pantheon"].([]any)
	require.True(t, ok)
	require.Len(t, pantheon, 2)
	assert.Equal(t, map[string]any{"id": "old", "name": "Elder", "extra": true}, pantheon[0])

	added := pantheon[1].(map[string]any)
	assert.Equal(t, newID, added["id"])
	assert.Equal(t, "The Chorus", added["name"])
	assert.Equal(t, "hive-mind", added["origin"])

	cmd, _ = testCmd()
	require.NoError(t, runApply(cmd, []string{"myth", "hive-mind"}))

	pantheon = sheetObject(t, s, "myth")["pantheon"].([]any)
	assert.Len(t, pantheon, 3, "applying twice appends twice")
}

func TestApply_UnknownRule(t *testing.T) {
	s := setup(t)
	addSheet(t, s, "myth", worksheet.ToolMythology, `{}`)

	cmd, _ := testCmd()
	assert.Error(t, runApply(cmd, []string{"myth", "no-such-rule"}))
}

func TestImplications_CustomRules(t *testing.T) {
	s := setup(t)

	p := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
rules:
  - id: crowded-pantheon
    when: 'len(pantheon) >= 2'
    perceivedConstant: The gods are many
    archetypeChannel: order
    explanation: A crowded pantheon wants a ruler.
`), 0o600))
	cfg.RulesPath = p

	addSheet(t, s, "myth", worksheet.ToolMythology, `{"pantheon":[{"id":"a"},{"id":"b"}]}`)

	jsonOutput = true

	cmd, out := testCmd()
	require.NoError(t, runImplications(cmd, []string{"myth"}))
	assert.JSONEq(t, `[{
		"ruleId":"crowded-pantheon",
		"perceivedConstant":"The gods are many",
		"archetypeChannel":"order",
		"explanation":"A crowded pantheon wants a ruler."
	}]`, out.String())
}

func TestImplications_None(t *testing.T) {
	s := setup(t)
	addSheet(t, s, "myth", worksheet.ToolMythology, `{}`)

	cmd, out := testCmd()
	require.NoError(t, runImplications(cmd, []string{"myth"}))
	assert.Equal(t, "no implications\n", out.String())
}

func TestCatalogCommand(t *testing.T) {
	setup(t)

	cmd, out := testCmd()
	require.NoError(t, runCatalog(cmd, nil))
	assert.Contains(t, out.String(), "planet-types")
	assert.Contains(t, out.String(), "sensory-modalities")

	cmd, out = testCmd()
	require.NoError(t, runCatalog(cmd, []string{"planet-types"}))
	assert.Contains(t, out.String(), "super-earth")

	cmd, _ = testCmd()
	err := runCatalog(cmd, []string{"planet-type"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean planet-types?")
}

func TestCleanup_ClosesStoreAfterFailedCommand(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cosmos.yaml")
	require.NoError(t, os.WriteFile(p,
		[]byte("database_path: "+filepath.Join(dir, "worlds.db")+"\nlogging:\n  level: error\n"), 0o600))

	t.Setenv(config.EnvDatabase, "")
	t.Setenv(config.EnvLogLevel, "")

	store = nil
	defer func() { configPath = config.DefaultPath }()

	rootCmd.SetArgs([]string{"--config", p, "apply", "missing", "some-rule"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.ErrorIs(t, err, worksheet.ErrNotFound)
	require.NotNil(t, store, "the failed command opened the store")

	opened := store
	cleanup()

	assert.Nil(t, store)
	_, err = opened.List(context.Background(), "")
	assert.Error(t, err, "store is closed")
}
