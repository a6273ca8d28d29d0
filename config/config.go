// Package config loads formatter settings from a .twigfmt.yml file.
package config

import (
	"github.com/kissumisha/ultimate-twig/pkg/twig/formatter"
)

// ConfigFileName is the file searched for in the target directory and
// its ancestors.
const ConfigFileName = ".twigfmt.yml"

// Config is the on-disk formatter configuration. Values are not
// validated here: the caller owns sanity checks, the formatter accepts
// whatever it is given.
type Config struct {
	Indent             int      `yaml:"indent"`
	Tabs               bool     `yaml:"tabs"`
	PreserveBlankLines *bool    `yaml:"preserve_blank_lines"` // pointer so "false" survives defaulting
	Exclude            []string `yaml:"exclude"`              // glob patterns skipped by watch mode
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	preserve := true
	return &Config{
		Indent:             4,
		PreserveBlankLines: &preserve,
	}
}

// Options converts the configuration to formatter options.
func (c *Config) Options() formatter.Options {
	opts := formatter.Options{
		IndentSize: c.Indent,
		UseTabs:    c.Tabs,
	}
	if c.PreserveBlankLines != nil {
		opts.PreserveBlankLines = *c.PreserveBlankLines
	} else {
		opts.PreserveBlankLines = true
	}
	return opts
}
