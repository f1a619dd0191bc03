package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "cosmos.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.RulesPath)
	assert.Empty(t, cfg.MappingsPath)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
database_path: /var/lib/cosmos/worlds.db
rules_path: rules.yaml
mappings_path: mappings.yaml
logging:
  level: DEBUG
  development: true
`))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/cosmos/worlds.db", cfg.DatabasePath)
	assert.Equal(t, "rules.yaml", cfg.RulesPath)
	assert.Equal(t, "mappings.yaml", cfg.MappingsPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "database_path: [unterminated"},
		{"bad level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "cosmos.db", cfg.DatabasePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cosmos.yaml")
	require.NoError(t, os.WriteFile(p, []byte("database_path: file.db\n"), 0o600))

	t.Setenv(EnvDatabase, "env.db")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidEnvLevelIgnored(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "shouty")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLogging_ZapConfig(t *testing.T) {
	tests := []struct {
		name    string
		logging Logging
		verbose bool
		want    zapcore.Level
	}{
		{"info", Logging{Level: "info"}, false, zapcore.InfoLevel},
		{"error", Logging{Level: "error"}, false, zapcore.ErrorLevel},
		{"verbose wins", Logging{Level: "error"}, true, zapcore.DebugLevel},
		{"garbage falls back", Logging{Level: "??"}, false, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zc := tt.logging.ZapConfig(tt.verbose)
			assert.Equal(t, tt.want, zc.Level.Level())
		})
	}

	assert.True(t, Logging{Level: "info", Development: true}.ZapConfig(false).Development)
}
