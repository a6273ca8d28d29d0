package formatter

import (
	"regexp"
	"strings"
)

// A Run is a maximal span of a line: either one template tag or
// expression, or the plain text between them. Runs partition the
// line left to right.
type Run struct {
	Text  string
	IsTag bool // {% ... %} or {{ ... }}
	Start int  // byte offset of the run within the original line
}

// templateSpanRe matches one template tag or expression. Non-greedy
// and single-line: a run never spans a line break.
var templateSpanRe = regexp.MustCompile(`\{\{.*?\}\}|\{%.*?%\}`)

// SplitRuns partitions a line into runs. Whitespace-only text runs
// are dropped. Splitting is a pure function of the line, so
// re-splitting a single-run line returns the same single run.
func SplitRuns(line string) []Run {
	spans := templateSpanRe.FindAllStringIndex(line, -1)
	if len(spans) == 0 {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		return []Run{{Text: line, Start: 0}}
	}

	runs := make([]Run, 0, len(spans)*2+1)
	pos := 0
	for _, span := range spans {
		if span[0] > pos {
			text := line[pos:span[0]]
			if strings.TrimSpace(text) != "" {
				runs = append(runs, Run{Text: text, Start: pos})
			}
		}
		runs = append(runs, Run{Text: line[span[0]:span[1]], IsTag: true, Start: span[0]})
		pos = span[1]
	}
	if pos < len(line) {
		text := line[pos:]
		if strings.TrimSpace(text) != "" {
			runs = append(runs, Run{Text: text, Start: pos})
		}
	}
	return runs
}

// quotedRegion is a half-open [from, to) span of the line that sits
// inside a quoted attribute value.
type quotedRegion struct {
	from, to int
}

// attrValueRe matches a quoted attribute value after '='. The closing
// quote is optional so an unterminated value still yields a region.
var attrValueRe = regexp.MustCompile(`=\s*("[^"]*"?|'[^']*'?)`)

// quotedRegions returns the spans of the line covered by quoted
// attribute values. Template delimiters inside these spans belong to
// the attribute and must not affect nesting. A bare quote in prose
// does not open a region: only the name="..." pattern counts.
func quotedRegions(line string) []quotedRegion {
	matches := attrValueRe.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}
	regions := make([]quotedRegion, 0, len(matches))
	for _, m := range matches {
		from, to := m[2], m[3]
		value := line[from:to]
		if len(value) < 2 || value[len(value)-1] != value[0] {
			// Unterminated value runs to end of line.
			to = len(line)
		}
		regions = append(regions, quotedRegion{from: from, to: to})
	}
	return regions
}

// insideQuotes reports whether offset i falls inside any quoted region.
func insideQuotes(regions []quotedRegion, i int) bool {
	for _, r := range regions {
		if i > r.from && i < r.to {
			return true
		}
	}
	return false
}
