package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Find walks from startDir toward the filesystem root looking for a
// config file and returns its path, or "" when none exists.
func Find(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadForFile finds and loads the configuration governing path,
// falling back to defaults when no config file exists.
func LoadForFile(path string) (*Config, error) {
	dir := filepath.Dir(path)
	found := Find(dir)
	if found == "" {
		return Defaults(), nil
	}
	return Load(found)
}

// Excluded reports whether path matches any exclude pattern. Patterns
// match against the base name and the slash-separated path; a pattern
// ending in "/**" excludes everything under that directory, at any
// depth.
func (c *Config) Excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
		// filepath.Match's * never crosses a separator, so the
		// recursive form needs a prefix check.
		if dir, recursive := strings.CutSuffix(pattern, "/**"); recursive {
			if slashed == dir || strings.HasPrefix(slashed, dir+"/") {
				return true
			}
		}
	}
	return false
}
