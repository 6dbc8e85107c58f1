package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "configs", cfg.ConfigsDir)
	assert.Equal(t, "model-index.yml", cfg.IndexFile)
	assert.Equal(t, "README.md", cfg.SummaryFile)
	assert.Equal(t, ".yml", cfg.MetafileExt)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modelindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: /srv/zoo\nindex_file: index.yml\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/zoo", cfg.Root)
	assert.Equal(t, "index.yml", cfg.IndexFile)
	// Unset fields keep their defaults.
	assert.Equal(t, "configs", cfg.ConfigsDir)
	assert.Equal(t, "README.md", cfg.SummaryFile)
}

func TestLoadFindsDefaultFileInCwd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("modelindex.yaml", []byte("configs_dir: models\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "models", cfg.ConfigsDir)
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
