package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	opts := cfg.Options()

	if opts.IndentSize != 4 {
		t.Errorf("default indent = %d, want 4", opts.IndentSize)
	}
	if opts.UseTabs {
		t.Error("tabs should default to off")
	}
	if !opts.PreserveBlankLines {
		t.Error("blank lines should be preserved by default")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "indent: 2\ntabs: false\npreserve_blank_lines: false\nexclude:\n  - vendor\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.Options()
	if opts.IndentSize != 2 {
		t.Errorf("indent = %d, want 2", opts.IndentSize)
	}
	if opts.PreserveBlankLines {
		t.Error("preserve_blank_lines: false was ignored")
	}
	if !cfg.Excluded("vendor") {
		t.Error("exclude pattern not applied")
	}
	if cfg.Excluded("templates") {
		t.Error("unmatched path excluded")
	}
}

func TestLoadPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("tabs: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.Options()
	if !opts.UseTabs {
		t.Error("tabs: true was ignored")
	}
	if opts.IndentSize != 4 {
		t.Errorf("missing indent should keep default 4, got %d", opts.IndentSize)
	}
	if !opts.PreserveBlankLines {
		t.Error("missing preserve_blank_lines should keep default true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("indent: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for bad yaml")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("indent: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if found := Find(nested); found != path {
		t.Errorf("Find(%q) = %q, want %q", nested, found, path)
	}
}

func TestExcluded(t *testing.T) {
	cfg := Defaults()
	cfg.Exclude = []string{"*.bak.twig", "vendor/**", "node_modules"}

	tests := []struct {
		path     string
		expected bool
	}{
		{"page.bak.twig", true},
		{"templates/page.bak.twig", true},
		{"vendor/a.twig", true},
		{"vendor/sub/b.twig", true},
		{"vendor/sub/deep/c.twig", true},
		{"vendor", true},
		{"node_modules", true},
		{"page.twig", false},
		{"vendored/a.twig", false},
		{"templates/vendor.twig", false},
	}

	for _, tt := range tests {
		if got := cfg.Excluded(tt.path); got != tt.expected {
			t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestLoadForFileDefaults(t *testing.T) {
	// No config anywhere above the temp dir (assuming a clean tree).
	dir := t.TempDir()
	cfg, err := LoadForFile(filepath.Join(dir, "page.twig"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indent != 4 {
		t.Errorf("expected default config, got indent %d", cfg.Indent)
	}
}
