package formatter

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	doubleSpace  = regexp.MustCompile(`  +`)

	// tagStartNoCloseRe matches a line that starts a markup tag but
	// never closes it: buffering begins here so the whole tag can be
	// collapsed onto one line.
	tagStartNoCloseRe = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9-]*[^>]*$`)

	// attrOpenQuoteRe finds the last attribute value opening on a line.
	attrOpenQuoteRe = regexp.MustCompile(`=\s*(["'])`)

	templateOpenRe  = regexp.MustCompile(`\{\{|\{%`)
	templateCloseRe = regexp.MustCompile(`\}\}|%\}`)
)

// containsTemplateDelim reports whether s holds any template delimiter.
func containsTemplateDelim(s string) bool {
	return templateOpenRe.MatchString(s)
}

// hasUnterminatedTemplateOpen reports whether s contains a template
// open delimiter with no close delimiter after it.
func hasUnterminatedTemplateOpen(s string) bool {
	opens := templateOpenRe.FindAllStringIndex(s, -1)
	if len(opens) == 0 {
		return false
	}
	lastOpen := opens[len(opens)-1][0]
	closes := templateCloseRe.FindAllStringIndex(s, -1)
	if len(closes) == 0 {
		return true
	}
	return closes[len(closes)-1][0] < lastOpen
}

// isAttributeStart decides whether a line begins a multi-line
// attribute region and returns the quote character when one is
// already open. Two shapes start buffering:
//
//	<div class="a {{        quoted value left open
//	<div                    tag started, never closed
func isAttributeStart(line string) (quote byte, ok bool) {
	if m := attrOpenQuoteRe.FindAllStringSubmatchIndex(line, -1); m != nil {
		last := m[len(m)-1]
		q := line[last[2]]
		rest := line[last[3]:]
		if !strings.ContainsRune(rest, rune(q)) && hasUnterminatedTemplateOpen(line) {
			return q, true
		}
	}
	if !strings.Contains(line, ">") && tagStartNoCloseRe.MatchString(line) && !containsOnlyTemplate(line) {
		return 0, true
	}
	return 0, false
}

// containsOnlyTemplate reports whether the line is a pure template
// construct (no markup tag start). A `{% if a < b %}` line must not
// be mistaken for an open tag.
func containsOnlyTemplate(line string) bool {
	stripped := templateSpanRe.ReplaceAllString(line, "")
	return !strings.Contains(stripped, "<")
}

// isSingleLineAttribute reports whether the line carries a quoted
// attribute value that opens and closes on this line and contains a
// template delimiter. Such lines are normalized immediately.
func isSingleLineAttribute(line string) bool {
	for _, r := range quotedRegions(line) {
		if r.to >= len(line) {
			continue // unterminated
		}
		if containsTemplateDelim(line[r.from:r.to]) {
			return true
		}
	}
	return false
}

// attrQuotedValueRe captures name = "value" (or single quotes) for the
// spacing pass inside CollapseAttribute.
var attrQuotedValueRe = regexp.MustCompile(`([a-zA-Z_:][-a-zA-Z0-9_:.]*)\s*=\s*("[^"]*"|'[^']*')`)

// CollapseAttribute joins the buffered lines of a multi-line attribute
// into one normalized line: internal whitespace collapses to single
// spaces and each embedded template block inside the quoted value gets
// exactly one space of separation. When no quoted value can be located
// the same spacing rule is applied to the whole line instead.
func CollapseAttribute(lines []string) string {
	joined := strings.Join(lines, " ")
	joined = whitespaceRe.ReplaceAllString(joined, " ")

	if containsTemplateDelim(joined) {
		matched := false
		for _, loc := range attrQuotedValueRe.FindAllStringSubmatchIndex(joined, -1) {
			value := joined[loc[4]:loc[5]]
			if containsTemplateDelim(value) {
				joined = joined[:loc[4]] + normalizeTemplateSpacing(value) + joined[loc[5]:]
				matched = true
				break
			}
		}
		if !matched {
			joined = normalizeTemplateSpacing(joined)
		}
		joined = doubleSpace.ReplaceAllString(joined, " ")
	}

	return strings.TrimSpace(joined)
}

// normalizeTemplateSpacing puts exactly one space before the first
// template open delimiter and after the last close delimiter. No space
// is inserted against the value's own quote, so href="{{ url }}" keeps
// its content intact.
func normalizeTemplateSpacing(s string) string {
	open := templateOpenRe.FindStringIndex(s)
	if open == nil {
		return s
	}
	head := strings.TrimRight(s[:open[0]], " ")
	if head != "" && !strings.HasSuffix(head, `"`) && !strings.HasSuffix(head, "'") {
		head += " "
	}
	s = head + s[open[0]:]

	closes := templateCloseRe.FindAllStringIndex(s, -1)
	if len(closes) > 0 {
		last := closes[len(closes)-1]
		tail := strings.TrimLeft(s[last[1]:], " ")
		if tail != "" && !strings.HasPrefix(tail, `"`) && !strings.HasPrefix(tail, "'") {
			tail = " " + tail
		}
		s = s[:last[1]] + tail
	}
	return s
}
