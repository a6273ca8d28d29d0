// Package complete exposes the static suggestion vocabularies for Twig
// templates: tag names, filters, functions, tests and operators, plus
// the embedded-language vocabularies (markup tags and attributes,
// stylesheet properties, script keywords). The lists are fixed data;
// the only contract is that the tag vocabulary stays consistent with
// the formatter's classifier.
package complete

import (
	"sort"
	"strings"
)

// Context describes where in a line the cursor sits, which picks the
// vocabulary to suggest from.
type Context int

const (
	ContextNone    Context = iota
	ContextTag             // inside {% ... %}
	ContextOutput          // inside {{ ... }}
	ContextMarkup          // after < in markup
	ContextAttr            // inside a markup tag, before >
	ContextStyle           // inside a style region
	ContextScript          // inside a script region
)

func (c Context) String() string {
	switch c {
	case ContextTag:
		return "tag"
	case ContextOutput:
		return "output"
	case ContextMarkup:
		return "markup"
	case ContextAttr:
		return "attribute"
	case ContextStyle:
		return "style"
	case ContextScript:
		return "script"
	}
	return "none"
}

// ContextAt determines the completion context for a cursor at column
// col of line. The scan is lexical, matching the formatter's view of
// the document: the last unclosed construct before the cursor wins.
// A <style> or <script> region opened earlier on the line suspends the
// template and markup contexts, just as it suspends their indentation.
func ContextAt(line string, col int) Context {
	if col > len(line) {
		col = len(line)
	}
	before := line[:col]

	lower := strings.ToLower(before)
	if inEmbeddedRegion(lower, "style") {
		return ContextStyle
	}
	if inEmbeddedRegion(lower, "script") {
		return ContextScript
	}

	tagOpen := strings.LastIndex(before, "{%")
	tagClose := strings.LastIndex(before, "%}")
	if tagOpen > tagClose {
		return ContextTag
	}

	outOpen := strings.LastIndex(before, "{{")
	outClose := strings.LastIndex(before, "}}")
	if outOpen > outClose {
		return ContextOutput
	}

	lt := strings.LastIndex(before, "<")
	gt := strings.LastIndex(before, ">")
	if lt > gt {
		// Inside a tag: right after < it is the tag name, after the
		// first space it is attribute territory.
		if strings.ContainsAny(before[lt:], " \t") {
			return ContextAttr
		}
		return ContextMarkup
	}

	return ContextNone
}

// inEmbeddedRegion reports whether an opening <name ...> tag appears
// in lower with no matching </name before the cursor. While the
// opening tag itself is still unclosed, the cursor is in attribute
// territory, not in the region.
func inEmbeddedRegion(lower, name string) bool {
	open := strings.LastIndex(lower, "<"+name)
	if open < 0 {
		return false
	}
	rest := lower[open+len(name)+1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '>' {
		return false // a longer tag name, e.g. <styled
	}
	if strings.LastIndex(lower, "</"+name) > open {
		return false
	}
	return strings.Contains(rest, ">")
}

// Suggest returns the vocabulary entries for ctx that start with
// prefix, sorted. An empty prefix returns the whole list.
func Suggest(prefix string, ctx Context) []string {
	var source []string
	switch ctx {
	case ContextTag:
		source = Tags
	case ContextOutput:
		source = merged(Functions, Filters, GlobalVariables)
	case ContextMarkup:
		source = HTMLTags
	case ContextAttr:
		source = HTMLAttributes
	case ContextStyle:
		source = CSSProperties
	case ContextScript:
		source = JSKeywords
	default:
		return nil
	}

	matches := make([]string, 0, len(source))
	for _, w := range source {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches
}

// Vocabulary returns the named list for twigfmt describe. Known names:
// tags, filters, functions, tests, operators, globals, html,
// attributes, css, js.
func Vocabulary(name string) ([]string, bool) {
	switch name {
	case "tags":
		return Tags, true
	case "filters":
		return Filters, true
	case "functions":
		return Functions, true
	case "tests":
		return Tests, true
	case "operators":
		return Operators, true
	case "globals":
		return GlobalVariables, true
	case "html":
		return HTMLTags, true
	case "attributes":
		return HTMLAttributes, true
	case "css":
		return CSSProperties, true
	case "js":
		return JSKeywords, true
	}
	return nil, false
}

// VocabularyNames lists the topics Vocabulary accepts, in display order.
func VocabularyNames() []string {
	return []string{
		"tags", "filters", "functions", "tests", "operators", "globals",
		"html", "attributes", "css", "js",
	}
}

func merged(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
