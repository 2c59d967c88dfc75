package viper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.LoadBytes([]byte("sysmsg:\n  catalog: messages.yaml\n"), "yaml"))

	assert.True(t, cfg.IsSet("sysmsg.catalog"))
	assert.False(t, cfg.IsSet("sysmsg.missing"))
	assert.Equal(t, "messages.yaml", cfg.GetString("sysmsg.catalog"))
	assert.Equal(t, "", cfg.ConfigFileDir())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logging":{"game":{"level":"debug"}}}`), 0o600))

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, dir, cfg.ConfigFileDir())

	var raw map[string]map[string]string
	require.NoError(t, cfg.UnmarshalKey("logging", &raw))
	assert.Equal(t, "debug", raw["game"]["level"])
}

func TestLoadFileMissing(t *testing.T) {
	cfg := New()
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestZeroValueConfig(t *testing.T) {
	var cfg Config
	assert.False(t, cfg.IsSet("any"))
	assert.NoError(t, cfg.Unmarshal(&struct{}{}))
}
