package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data:
  raw_dir: /srv/data/raw
countries:
  column: Nation
  alias_file: ${ALIAS_DIR}/aliases.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("ALIAS_DIR", "/srv/curation")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/data/raw", cfg.Data.RawDir)
	assert.Equal(t, "data/processed", cfg.Data.ProcessedDir, "default applied")
	assert.Equal(t, "Nation", cfg.Countries.Column)
	assert.Equal(t, "/srv/curation/aliases.yaml", cfg.Countries.AliasFile, "env expanded")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("data: [not a mapping"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COUNTRYSTD_COLUMN", "Nation")
	t.Setenv("COUNTRYSTD_RAW_DIR", "")

	cfg := LoadFromEnv()
	assert.Equal(t, "Nation", cfg.Countries.Column)
	assert.Equal(t, "data/raw", cfg.Data.RawDir, "default applied")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Country", cfg.Countries.Column)
	assert.Equal(t, "data/raw", cfg.Data.RawDir)
	assert.Equal(t, "data/processed", cfg.Data.ProcessedDir)
}
