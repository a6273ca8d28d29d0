package formatter

import (
	"strings"
	"testing"
)

func format(t *testing.T, source string, opts Options) string {
	t.Helper()
	return Format(source, opts)
}

func TestSimpleBlock(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentSize = 2

	input := "{% if x %}\nhello\n{% endif %}"
	want := "{% if x %}\n  hello\n{% endif %}"

	if got := format(t, input, opts); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNestedMarkupAndTemplate(t *testing.T) {
	input := strings.Join([]string{
		"<div>",
		"{% for i in items %}",
		"<p>{{ i }}</p>",
		"{% endfor %}",
		"</div>",
	}, "\n")
	want := strings.Join([]string{
		"<div>",
		"    {% for i in items %}",
		"        <p>{{ i }}</p>",
		"    {% endfor %}",
		"</div>",
	}, "\n")

	if got := format(t, input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSingleLineBlock(t *testing.T) {
	input := "{% if x %}y{% endif %}"

	got := format(t, input, DefaultOptions())
	if got != input {
		t.Errorf("single-line block changed: got %q, want %q", got, input)
	}

	// Depth must not leak into a following line.
	input = "{% if x %}y{% endif %}\nafter"
	want := "{% if x %}y{% endif %}\nafter"
	if got := format(t, input, DefaultOptions()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttributeCollapse(t *testing.T) {
	input := "<div\n  class=\"a {{ b }} c\">"
	want := "<div class=\"a {{ b }} c\">"

	if got := format(t, input, DefaultOptions()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttributeValueContentPreserved(t *testing.T) {
	// An expression filling the whole value must round-trip without
	// whitespace appearing inside the quotes.
	input := `<a href="{{ url }}">text</a>`
	if got := format(t, input, DefaultOptions()); got != input {
		t.Errorf("attribute value altered: got %q, want %q", got, input)
	}
}

func TestMidBlockTag(t *testing.T) {
	input := strings.Join([]string{
		"{% if a %}",
		"X",
		"{% else %}",
		"Y",
		"{% endif %}",
	}, "\n")
	want := strings.Join([]string{
		"{% if a %}",
		"    X",
		"{% else %}",
		"    Y",
		"{% endif %}",
	}, "\n")

	if got := format(t, input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"{% if x %}\nhello\n{% endif %}\n",
		"<div>\n{% for i in items %}\n<p>{{ i }}</p>\n{% endfor %}\n</div>\n",
		"{% if a %}\nX\n{% else %}\nY\n{% endif %}\n",
		"<div class=\"a {{ b }} c\">\ntext\n</div>\n",
		"{# a comment\nspanning lines #}\ndone\n",
		"<script>\nfunction f() {\nreturn [1, 2];\n}\n</script>\n",
		"{% verbatim %}\n{% if raw %}\n{% endverbatim %}\n",
	}

	opts := DefaultOptions()
	for _, input := range inputs {
		once := Format(input, opts)
		twice := Format(once, opts)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:\n%s\ntwice:\n%s", input, once, twice)
		}
	}
}

func TestLineCountPreserved(t *testing.T) {
	input := strings.Join([]string{
		"{% extends \"base.html.twig\" %}",
		"",
		"{% block content %}",
		"<div>",
		"<p>hello</p>",
		"",
		"</div>",
		"{% endblock %}",
	}, "\n")

	got := Format(input, DefaultOptions())
	inLines := strings.Split(input, "\n")
	outLines := strings.Split(got, "\n")
	if len(inLines) != len(outLines) {
		t.Errorf("line count changed: %d in, %d out\n%s", len(inLines), len(outLines), got)
	}
}

func TestBlankLinesDropped(t *testing.T) {
	opts := DefaultOptions()
	opts.PreserveBlankLines = false

	input := "a\n\n\nb"
	want := "a\nb"
	if got := Format(input, opts); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDepthNeverNegative(t *testing.T) {
	input := strings.Join([]string{
		"</div>",
		"{% endif %}",
		"{% endfor %}",
		"</span>",
		"text",
	}, "\n")

	got := Format(input, DefaultOptions())
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " ") {
			t.Errorf("line indented despite clamped depth: %q", line)
		}
	}

	stats := Check(input, DefaultOptions())
	if stats.ExcessClosers != 4 {
		t.Errorf("ExcessClosers = %d, want 4", stats.ExcessClosers)
	}
	if stats.OpenBlocks != 0 || stats.OpenTags != 0 {
		t.Errorf("unexpected open counts: %+v", stats)
	}
}

func TestScriptBraceBalance(t *testing.T) {
	input := strings.Join([]string{
		"<script>",
		"function f() {",
		"if (x) {",
		"g();",
		"}",
		"}",
		"</script>",
	}, "\n")

	got := strings.Split(Format(input, DefaultOptions()), "\n")

	// The line closing a block has the indent of the line that opened it.
	pairs := [][2]int{{1, 5}, {2, 4}}
	for _, p := range pairs {
		openIndent := indentOf(got[p[0]])
		closeIndent := indentOf(got[p[1]])
		if openIndent != closeIndent {
			t.Errorf("brace mismatch: line %d indent %d vs line %d indent %d\n%s",
				p[0], openIndent, p[1], closeIndent, strings.Join(got, "\n"))
		}
	}

	// Open and close tags sit at the same level.
	if indentOf(got[0]) != indentOf(got[6]) {
		t.Errorf("script tags misaligned:\n%s", strings.Join(got, "\n"))
	}
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func TestStyleRegion(t *testing.T) {
	input := strings.Join([]string{
		"<style>",
		".box {",
		"color: red;",
		"}",
		"</style>",
	}, "\n")
	want := strings.Join([]string{
		"<style>",
		"    .box {",
		"        color: red;",
		"    }",
		"</style>",
	}, "\n")

	if got := Format(input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCommentRegion(t *testing.T) {
	input := strings.Join([]string{
		"{% if x %}",
		"{# this comment",
		"{% endif %} is not a closer",
		"still a comment #}",
		"{% endif %}",
	}, "\n")
	want := strings.Join([]string{
		"{% if x %}",
		"    {# this comment",
		"    {% endif %} is not a closer",
		"    still a comment #}",
		"{% endif %}",
	}, "\n")

	if got := Format(input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestVerbatimRegion(t *testing.T) {
	input := strings.Join([]string{
		"{% verbatim %}",
		"{% if this stays put %}",
		"<div>",
		"{% endverbatim %}",
	}, "\n")
	want := strings.Join([]string{
		"{% verbatim %}",
		"    {% if this stays put %}",
		"    <div>",
		"{% endverbatim %}",
	}, "\n")

	if got := Format(input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmbeddedExpressionDoesNotNest(t *testing.T) {
	input := strings.Join([]string{
		"<a href=\"{% if ext %}http://x{% endif %}\">",
		"after",
	}, "\n")

	got := strings.Split(Format(input, DefaultOptions()), "\n")
	if indentOf(got[1]) != 0 {
		t.Errorf("embedded expression changed depth:\n%s", strings.Join(got, "\n"))
	}
}

func TestTabs(t *testing.T) {
	opts := DefaultOptions()
	opts.UseTabs = true

	input := "{% if x %}\nhello\n{% endif %}"
	want := "{% if x %}\n\thello\n{% endif %}"
	if got := Format(input, opts); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTrailingNewlinePreserved(t *testing.T) {
	with := Format("hello\n", DefaultOptions())
	if !strings.HasSuffix(with, "\n") {
		t.Errorf("trailing newline dropped: %q", with)
	}
	without := Format("hello", DefaultOptions())
	if strings.HasSuffix(without, "\n") {
		t.Errorf("trailing newline invented: %q", without)
	}
}

func TestBlankOnlyDocument(t *testing.T) {
	if got := Format("\n", DefaultOptions()); got != "\n" {
		t.Errorf("blank-only document: got %q, want %q", got, "\n")
	}
	if got := Format("\n\n\n", DefaultOptions()); got != "\n\n\n" {
		t.Errorf("blank-only document: got %q, want %q", got, "\n\n\n")
	}

	opts := DefaultOptions()
	opts.PreserveBlankLines = false
	if got := Format("\n", opts); got != "" {
		t.Errorf("dropped blanks: got %q, want empty", got)
	}
}

func TestUnterminatedAttributeDropped(t *testing.T) {
	// The buffer never closes; it is dropped rather than crashing.
	input := "<div class=\"a {{ b\nmore"
	got := Format(input, DefaultOptions())
	if got != "" {
		t.Errorf("expected empty output for unterminated attribute, got %q", got)
	}
}

func TestCheckOpenBlocks(t *testing.T) {
	stats := Check("{% if a %}\n{% for b in c %}\n<div>\n", DefaultOptions())
	if stats.OpenBlocks != 2 {
		t.Errorf("OpenBlocks = %d, want 2", stats.OpenBlocks)
	}
	if stats.OpenTags != 1 {
		t.Errorf("OpenTags = %d, want 1", stats.OpenTags)
	}
}

func TestSetForms(t *testing.T) {
	// Assignment form never opens a level; capture form does.
	input := strings.Join([]string{
		"{% set a = 1 %}",
		"{% set b %}",
		"text",
		"{% endset %}",
	}, "\n")
	want := strings.Join([]string{
		"{% set a = 1 %}",
		"{% set b %}",
		"    text",
		"{% endset %}",
	}, "\n")

	if got := Format(input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWholeTemplate(t *testing.T) {
	input := strings.Join([]string{
		"{% extends \"layout.twig\" %}",
		"{% block body %}",
		"<ul>",
		"{% for item in items %}",
		"<li>{{ item.name }}</li>",
		"{% endfor %}",
		"</ul>",
		"{% endblock %}",
	}, "\n")
	want := strings.Join([]string{
		"{% extends \"layout.twig\" %}",
		"{% block body %}",
		"    <ul>",
		"        {% for item in items %}",
		"            <li>{{ item.name }}</li>",
		"        {% endfor %}",
		"    </ul>",
		"{% endblock %}",
	}, "\n")

	if got := Format(input, DefaultOptions()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
