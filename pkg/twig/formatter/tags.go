package formatter

import (
	"regexp"
	"strings"
)

// TagKind classifies a template tag by its effect on block nesting.
type TagKind int

const (
	TagOther TagKind = iota // expressions, comments, unknown tags
	TagOpener
	TagCloser
	TagMidBlock
	TagStandalone
)

// Block tags that open a nested region and their matching closers.
var blockOpeners = map[string]bool{
	"block": true, "for": true, "if": true, "macro": true, "embed": true,
	"autoescape": true, "spaceless": true, "trans": true, "apply": true,
	"cache": true, "sandbox": true, "with": true, "verbatim": true,
}

var blockClosers = map[string]bool{
	"endblock": true, "endfor": true, "endif": true, "endmacro": true,
	"endset": true, "endembed": true, "endautoescape": true,
	"endspaceless": true, "endtrans": true, "endapply": true,
	"endcache": true, "endsandbox": true, "endwith": true,
	"endverbatim": true,
}

// Tags that terminate the current branch and open the next one.
var midBlockTags = map[string]bool{
	"else": true, "elseif": true,
}

// Tags that never affect nesting depth.
var standaloneTags = map[string]bool{
	"include": true, "import": true, "from": true, "use": true,
	"extends": true, "do": true, "flush": true, "deprecated": true,
}

// tagNameRe extracts the leading tag name from a {% ... %} run,
// allowing the whitespace-control form {%- ... -%}.
var tagNameRe = regexp.MustCompile(`^\{%-?\s*([a-zA-Z_][a-zA-Z0-9_]*)`)

// TagName returns the tag name of a {% ... %} run, or "" for
// expressions and text.
func TagName(run string) string {
	m := tagNameRe.FindStringSubmatch(run)
	if m == nil {
		return ""
	}
	return m[1]
}

// ClassifyTag returns the TagKind of a single template run.
// {{ ... }} expressions are always TagOther: they never nest.
func ClassifyTag(run string) TagKind {
	name := TagName(run)
	if name == "" {
		return TagOther
	}
	switch {
	case midBlockTags[name]:
		return TagMidBlock
	case blockClosers[name]:
		return TagCloser
	case name == "set":
		// {% set x %} opens a region closed by {% endset %};
		// the assignment form {% set x = ... %} stands alone.
		if strings.Contains(run, "=") {
			return TagStandalone
		}
		return TagOpener
	case blockOpeners[name]:
		return TagOpener
	case standaloneTags[name]:
		return TagStandalone
	}
	return TagOther
}

// KnownTagNames returns every tag name the classifier recognizes,
// in no particular order. The completion vocabulary is checked
// against this list.
func KnownTagNames() []string {
	names := make([]string, 0, len(blockOpeners)+len(blockClosers)+len(midBlockTags)+len(standaloneTags)+1)
	for n := range blockOpeners {
		names = append(names, n)
	}
	for n := range blockClosers {
		names = append(names, n)
	}
	for n := range midBlockTags {
		names = append(names, n)
	}
	for n := range standaloneTags {
		names = append(names, n)
	}
	names = append(names, "set")
	return names
}

// Void HTML elements have no closing tag and never open a level.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// markupTag is one HTML tag found inside a text run.
type markupTag struct {
	name        string
	closing     bool // </name ...>
	selfClosing bool // <name ... /> or a void element
}

var markupTagRe = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9-]*)((?:[^>"']|"[^"]*"|'[^']*')*?)(/?)>`)

// scanMarkupTags finds every complete HTML tag in a text run.
// Comments, doctypes and processing instructions are not matched.
func scanMarkupTags(text string) []markupTag {
	matches := markupTagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]markupTag, 0, len(matches))
	for _, m := range matches {
		name := strings.ToLower(m[2])
		tags = append(tags, markupTag{
			name:        name,
			closing:     m[1] == "/",
			selfClosing: m[4] == "/" || voidElements[name],
		})
	}
	return tags
}

var (
	scriptOpenRe  = regexp.MustCompile(`(?i)<script\b[^>]*>`)
	scriptCloseRe = regexp.MustCompile(`(?i)</script\s*>`)
	styleOpenRe   = regexp.MustCompile(`(?i)<style\b[^>]*>`)
	styleCloseRe  = regexp.MustCompile(`(?i)</style\s*>`)
)

// isScriptOpen reports whether the line opens a script region that it
// does not also close.
func isScriptOpen(line string) bool {
	return scriptOpenRe.MatchString(line) && !scriptCloseRe.MatchString(line)
}

func isScriptClose(line string) bool {
	return scriptCloseRe.MatchString(line)
}

func isStyleOpen(line string) bool {
	return styleOpenRe.MatchString(line) && !styleCloseRe.MatchString(line)
}

func isStyleClose(line string) bool {
	return styleCloseRe.MatchString(line)
}

// braceDelta computes the net brace/bracket balance of a script or
// style line: opens minus closes.
func braceDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{', '[':
			delta++
		case '}', ']':
			delta--
		}
	}
	return delta
}
