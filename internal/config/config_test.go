package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "docforge", cfg.Project)
	assert.Equal(t, []string{"**/*.go"}, cfg.Source.Includes)
	assert.Contains(t, cfg.Source.Excludes, "**/*_test.go")
	assert.Equal(t, []string{"json", "html"}, cfg.Output.Formats)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "127.0.0.1:8970", cfg.Serve.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docforge.yaml")
	content := `project: myproject
output:
  dir: build/docs
  formats: [markdown]
workers: 4
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myproject", cfg.Project)
	assert.Equal(t, "build/docs", cfg.Output.Dir)
	assert.Equal(t, []string{"markdown"}, cfg.Output.Formats)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, []string{"**/*.go"}, cfg.Source.Includes)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docforge.yaml"), []byte("project: fromdir\n"), 0644))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "fromdir", cfg.Project)
}

func TestLoadFromDir_HiddenLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".docforge"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".docforge", "config.yaml"), []byte("project: hidden\n"), 0644))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "hidden", cfg.Project)
}

func TestLoadFromDir_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Project = "roundtrip"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestCachePath(t *testing.T) {
	cfg := Default()
	cfg.Source.Root = "/work/project"
	assert.Equal(t, filepath.Join("/work/project", ".docforge", "cache.db"), cfg.CachePath())

	cfg.Cache.Path = "/abs/cache.db"
	assert.Equal(t, "/abs/cache.db", cfg.CachePath())
}
