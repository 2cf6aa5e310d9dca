package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/datamodels/pkg/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_model: llp64\nbits: true\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "llp64", cfg.DefaultModel)
	assert.True(t, cfg.Bits)
	assert.Equal(t, "text", cfg.Format)

	m, err := cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, model.LLP64, m)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("default_model: [\n"), 0644))
	_, err := LoadConfig(bad)
	assert.ErrorContains(t, err, "parsing config")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("default_model: LP128\n"), 0644))
	_, err = LoadConfig(unknown)
	assert.ErrorIs(t, err, model.ErrUnknownModel)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{DefaultModel: "ILP32", Format: "yaml", Bits: true, Debug: true}

	require.NoError(t, SaveConfig(cfg, path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
