// Package config loads and applies .yacare.yml configuration files
// for check overrides, severity adjustments, and ingestion settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CheckOverride allows per-check severity or disable.
type CheckOverride struct {
	Severity string `yaml:"severity,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Config represents the .yacare.yml configuration file.
type Config struct {
	Severity       string                   `yaml:"severity,omitempty"`
	FailOn         string                   `yaml:"fail_on,omitempty"`
	Format         string                   `yaml:"format,omitempty"`
	Checks         string                   `yaml:"checks,omitempty"`
	Delimiter      string                   `yaml:"delimiter,omitempty"`
	NAStrings      []string                 `yaml:"na_strings,omitempty"`
	Factors        []string                 `yaml:"factors,omitempty"`
	Ignore         []string                 `yaml:"ignore,omitempty"`
	CheckOverrides map[string]CheckOverride `yaml:"check_overrides,omitempty"`
}

// Load reads the .yacare.yml or .yacare.yaml config file from the given path.
// If path is a file, its parent directory is used. If no config file is found,
// it returns a zero Config (not an error).
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range []string{".yacare.yml", ".yacare.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > 1<<20 {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Config{}, nil
}
