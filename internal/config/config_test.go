package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("api_base_url: https://api.dataroom.example\ndefault_tenant: acme\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://api.dataroom.example", cfg.APIBaseURL)
	assert.Equal(t, "acme", cfg.DefaultTenant)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("api_base_url: https://file.example\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	t.Setenv("DATAROOM_API_URL", "https://env.example")
	t.Setenv("DATAROOM_TENANT", "globex")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.APIBaseURL)
	assert.Equal(t, "globex", cfg.DefaultTenant)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{APIBaseURL: "https://api.dataroom.example", DefaultTenant: "acme", LogLevel: "warn", LogFormat: "json"}
	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIBaseURL, loaded.APIBaseURL)
	assert.Equal(t, cfg.DefaultTenant, loaded.DefaultTenant)
	assert.Equal(t, "warn", loaded.LogLevel)
}

func TestDefaultDirEnvOverride(t *testing.T) {
	t.Setenv("DATAROOM_CONFIG_DIR", "/tmp/dataroom-test")
	assert.Equal(t, "/tmp/dataroom-test", DefaultDir())
}
