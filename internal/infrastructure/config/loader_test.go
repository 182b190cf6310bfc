package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, "1", cfg.ConfigFormatVersion)
	assert.NotEmpty(t, cfg.Models)
	assert.Equal(t, cfg.Models[0].Name, cfg.Preferences.DefaultModel)
}

func TestLoadParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `config_format_version: "1"
preferences:
  default_model: local
models:
  - name: local
    endpoint: http://localhost:11434/v1/chat/completions
    model_id: llama3
cache:
  layout_ttl_hours: 48
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Preferences.DefaultModel)
	require.Len(t, cfg.Models, 1)
	assert.Equal(t, "llama3", cfg.Models[0].ModelID)
	assert.Equal(t, 48, cfg.Cache.LayoutTTLHours)
}

func TestLoadHydratesCacheDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: {}\n"), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Cache.LayoutTTLHours)
	assert.Equal(t, 100, cfg.Cache.LayoutCapacity)
	assert.Equal(t, 50, cfg.Cache.WorkspaceCapacity)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml {"), 0o600))

	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("INTENTDESK_CONFIG", path)

	cfg, err := NewFileLoader("").Load(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.NotEmpty(t, cfg.Models)
}
