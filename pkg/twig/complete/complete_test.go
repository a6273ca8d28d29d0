package complete

import (
	"sort"
	"testing"

	"github.com/kissumisha/ultimate-twig/pkg/twig/formatter"
)

// Every tag name the formatter classifies must be offered for
// completion, and vice versa we never suggest a tag the formatter has
// never heard of.
func TestTagsMatchFormatterVocabulary(t *testing.T) {
	known := map[string]bool{}
	for _, name := range formatter.KnownTagNames() {
		known[name] = true
	}

	offered := map[string]bool{}
	for _, name := range Tags {
		offered[name] = true
	}

	for name := range known {
		if !offered[name] {
			t.Errorf("formatter tag %q missing from completion Tags", name)
		}
	}
	for name := range offered {
		if !known[name] {
			t.Errorf("completion tag %q unknown to the formatter", name)
		}
	}
}

func TestContextAt(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want Context
	}{
		{"{% en", 5, ContextTag},
		{"{% if x %} {{ va", 16, ContextOutput},
		{"{% if x %} done", 15, ContextNone},
		{"<di", 3, ContextMarkup},
		{"<div cla", 8, ContextAttr},
		{"<div>text", 9, ContextNone},
		{"plain", 5, ContextNone},
		{"<style>.box { col", 17, ContextStyle},
		{"<script>if (x) { ret", 20, ContextScript},
		// Still inside the opening tag: attribute completion applies.
		{"<style med", 10, ContextAttr},
		// A closed region resumes normal scanning.
		{"<style>x</style> <di", 20, ContextMarkup},
		{"<styled>tex", 11, ContextNone},
	}

	for _, tt := range tests {
		if got := ContextAt(tt.line, tt.col); got != tt.want {
			t.Errorf("ContextAt(%q, %d) = %v, want %v", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("end", ContextTag)
	if len(got) == 0 {
		t.Fatal("no closers suggested for prefix 'end'")
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("suggestions not sorted: %v", got)
	}
	for _, w := range got {
		if len(w) < 3 || w[:3] != "end" {
			t.Errorf("suggestion %q does not match prefix", w)
		}
	}

	if all := Suggest("", ContextMarkup); len(all) != len(HTMLTags) {
		t.Errorf("empty prefix should return the whole list: %d vs %d", len(all), len(HTMLTags))
	}

	if none := Suggest("x", ContextNone); none != nil {
		t.Errorf("ContextNone should suggest nothing, got %v", none)
	}
}

func TestVocabulary(t *testing.T) {
	for _, name := range VocabularyNames() {
		list, ok := Vocabulary(name)
		if !ok {
			t.Errorf("Vocabulary(%q) not found", name)
			continue
		}
		if len(list) == 0 {
			t.Errorf("Vocabulary(%q) is empty", name)
		}
	}

	if _, ok := Vocabulary("nope"); ok {
		t.Error("unknown topic should not resolve")
	}
}
