// Package config loads docforge configuration from YAML with sensible
// defaults when no file is present.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for docforge.
type Config struct {
	Project string       `yaml:"project"`
	Source  SourceConfig `yaml:"source"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"`
	Cache   CacheConfig  `yaml:"cache"`
	Serve   ServeConfig  `yaml:"serve"`
	Logging LogConfig    `yaml:"logging"`
}

// SourceConfig selects which files feed the corpus.
type SourceConfig struct {
	Root     string   `yaml:"root"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// OutputConfig selects output directory and formats.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"` // json, markdown, html
}

// CacheConfig controls the incremental record cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Project: "docforge",
		Source: SourceConfig{
			Root:     ".",
			Includes: []string{"**/*.go"},
			Excludes: []string{"**/vendor/**", "**/testdata/**", "**/*_test.go", "**/node_modules/**"},
		},
		Output: OutputConfig{
			Dir:     "docs",
			Formats: []string{"json", "html"},
		},
		Workers: 0, // 0 means runtime.NumCPU()
		Cache: CacheConfig{
			Enabled: true,
			Path:    ".docforge/cache.db",
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8970",
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, layered over defaults. A
// missing file returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir looks for docforge.yaml or .docforge/config.yaml under dir.
func LoadFromDir(dir string) (*Config, error) {
	for _, candidate := range []string{
		filepath.Join(dir, "docforge.yaml"),
		filepath.Join(dir, ".docforge", "config.yaml"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CachePath resolves the cache path relative to the source root.
func (c *Config) CachePath() string {
	if filepath.IsAbs(c.Cache.Path) {
		return c.Cache.Path
	}
	return filepath.Join(c.Source.Root, c.Cache.Path)
}
