// Package formatter reformats Twig template source: a single-pass,
// line-oriented state machine that tracks template-block nesting,
// markup-tag nesting and embedded script/style brace nesting while
// suspending normal processing for comment regions, verbatim regions
// and multi-line attribute values. It never fails: malformed input
// degrades to wrong indentation, not an error.
package formatter

import (
	"regexp"
	"strings"
)

// Options controls the emitted indentation. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	IndentSize         int  // spaces per level, ignored when UseTabs
	UseTabs            bool // one tab per level
	PreserveBlankLines bool // keep blank lines in the output
}

// DefaultOptions returns the standard settings: four spaces per level,
// blank lines preserved.
func DefaultOptions() Options {
	return Options{
		IndentSize:         4,
		PreserveBlankLines: true,
	}
}

func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentSize)
}

// mode is the mutually exclusive processing state of the engine.
type mode int

const (
	modeNormal mode = iota
	modeComment
	modeVerbatim
	modeScript
	modeStyle
	modeAttribute
)

// Stats summarizes the balance of a document, for twigfmt --check.
type Stats struct {
	OpenBlocks    int // template blocks left open at end of input
	OpenTags      int // markup tags left open at end of input
	ExcessClosers int // closers that arrived with nothing left to close
}

// state carries the formatter through one document. It is created per
// Format call and never shared.
type state struct {
	opts Options

	templateDepth int
	markupDepth   int
	mode          mode

	scriptBaseDepth int
	styleBaseDepth  int

	attrBuf   []string
	attrQuote byte

	excessClosers int
	out           []string
}

// Format reformats source and returns the result. Input is read line
// by line; the output has the same trailing-newline shape as the
// input. Any text is accepted: unbalanced documents come out with
// clamped (never negative) indentation.
func Format(source string, opts Options) string {
	out, _ := run(source, opts)
	return out
}

// Check runs the formatting pass without returning output and reports
// how unbalanced the document is.
func Check(source string, opts Options) Stats {
	_, stats := run(source, opts)
	return stats
}

func run(source string, opts Options) (string, Stats) {
	if source == "" {
		return "", Stats{}
	}

	trailingNewline := strings.HasSuffix(source, "\n")
	lines := strings.Split(source, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	s := &state{opts: opts, out: make([]string, 0, len(lines))}
	for _, line := range lines {
		s.processLine(strings.TrimRight(line, "\r"))
	}
	// An unterminated attribute buffer at end of input is dropped.

	// len(s.out) rather than result != "": a blank-only document joins
	// to the empty string but still has lines to terminate.
	result := strings.Join(s.out, "\n")
	if trailingNewline && len(s.out) > 0 {
		result += "\n"
	}
	stats := Stats{
		OpenBlocks:    s.templateDepth,
		OpenTags:      s.markupDepth,
		ExcessClosers: s.excessClosers,
	}
	return result, stats
}

// emit appends one output line at the current indent.
func (s *state) emit(content string) {
	if content == "" {
		s.out = append(s.out, "")
		return
	}
	depth := s.templateDepth + s.markupDepth
	s.out = append(s.out, strings.Repeat(s.opts.indentUnit(), depth)+content)
}

var (
	verbatimOpenRe  = regexp.MustCompile(`\{%-?\s*verbatim\b`)
	verbatimCloseRe = regexp.MustCompile(`\{%-?\s*endverbatim\b`)
)

// processLine dispatches one raw line according to the current mode.
// First matching rule wins.
func (s *state) processLine(raw string) {
	trimmed := strings.TrimSpace(raw)

	if s.mode == modeAttribute {
		s.continueAttribute(trimmed)
		return
	}

	if trimmed == "" {
		if s.opts.PreserveBlankLines {
			s.out = append(s.out, "")
		}
		return
	}

	switch s.mode {
	case modeComment:
		s.emit(trimmed)
		if strings.Contains(trimmed, "#}") {
			s.mode = modeNormal
		}
		return

	case modeVerbatim:
		if verbatimCloseRe.MatchString(trimmed) {
			s.decTemplate(1)
			s.emit(trimmed)
			s.mode = modeNormal
			return
		}
		s.emit(trimmed)
		return

	case modeScript:
		if isScriptClose(trimmed) {
			s.markupDepth = s.scriptBaseDepth
			s.emit(trimmed)
			s.mode = modeNormal
			return
		}
		s.embeddedBody(trimmed)
		return

	case modeStyle:
		if isStyleClose(trimmed) {
			s.markupDepth = s.styleBaseDepth
			s.emit(trimmed)
			s.mode = modeNormal
			return
		}
		s.embeddedBody(trimmed)
		return
	}

	// Normal mode from here on.
	if quote, ok := isAttributeStart(trimmed); ok {
		s.mode = modeAttribute
		s.attrQuote = quote
		s.attrBuf = append(s.attrBuf[:0], trimmed)
		return
	}

	if isSingleLineAttribute(trimmed) {
		s.emit(CollapseAttribute([]string{trimmed}))
		return
	}

	if idx := strings.Index(trimmed, "{#"); idx >= 0 {
		s.emit(trimmed)
		if !strings.Contains(trimmed[idx+2:], "#}") {
			s.mode = modeComment
		}
		return
	}

	if verbatimOpenRe.MatchString(trimmed) && !verbatimCloseRe.MatchString(trimmed) {
		s.emit(trimmed)
		s.templateDepth++
		s.mode = modeVerbatim
		return
	}

	if isScriptOpen(trimmed) {
		s.emit(trimmed)
		s.scriptBaseDepth = s.markupDepth
		s.markupDepth++
		s.mode = modeScript
		return
	}

	if isStyleOpen(trimmed) {
		s.emit(trimmed)
		s.styleBaseDepth = s.markupDepth
		s.markupDepth++
		s.mode = modeStyle
		return
	}

	s.normalLine(trimmed)
}

// normalLine classifies every run of the line and applies the net
// depth effect. Closers pair off against openers that appeared earlier
// on the same line, so a block opened and closed on one line never
// shifts depth; unmatched closers dedent before the line is emitted
// and unmatched openers indent the lines that follow it.
func (s *state) normalLine(line string) {
	quoted := quotedRegions(line)

	preTemplate, openTemplate := 0, 0
	preMarkup, openMarkup := 0, 0

	for _, r := range SplitRuns(line) {
		if r.IsTag {
			// Expressions embedded in attribute values never change
			// nesting depth.
			if insideQuotes(quoted, r.Start) {
				continue
			}
			switch ClassifyTag(r.Text) {
			case TagCloser:
				if openTemplate > 0 {
					openTemplate--
				} else {
					preTemplate++
				}
			case TagMidBlock:
				if openTemplate > 0 {
					openTemplate--
				} else {
					preTemplate++
				}
				openTemplate++
			case TagOpener:
				openTemplate++
			}
			continue
		}

		for _, tag := range scanMarkupTags(r.Text) {
			if tag.selfClosing {
				continue
			}
			if tag.closing {
				if openMarkup > 0 {
					openMarkup--
				} else {
					preMarkup++
				}
			} else {
				openMarkup++
			}
		}
	}

	s.decTemplate(preTemplate)
	s.decMarkup(preMarkup)
	s.emit(line)
	s.templateDepth += openTemplate
	s.markupDepth += openMarkup
}

// embeddedBody indents a script or style line by its net brace and
// bracket balance: a closing line dedents before it is emitted, an
// opening line indents only the lines after it.
func (s *state) embeddedBody(line string) {
	delta := braceDelta(line)
	if delta < 0 {
		s.decMarkup(-delta)
		s.emit(line)
		return
	}
	s.emit(line)
	s.markupDepth += delta
}

// continueAttribute buffers one more line of a multi-line attribute
// and emits the collapsed result once the value's quote is balanced
// and the tag has closed.
func (s *state) continueAttribute(line string) {
	s.attrBuf = append(s.attrBuf, line)
	joined := strings.Join(s.attrBuf, " ")

	if s.attrQuote == 0 {
		if i := strings.IndexAny(joined, `"'`); i >= 0 {
			s.attrQuote = joined[i]
		}
	}
	if s.attrQuote != 0 && strings.Count(joined, string(s.attrQuote))%2 != 0 {
		return // value still open, keep buffering
	}
	if !strings.Contains(joined, ">") {
		return // tag still open
	}

	s.emit(CollapseAttribute(s.attrBuf))
	s.attrBuf = s.attrBuf[:0]
	s.attrQuote = 0
	s.mode = modeNormal
}

func (s *state) decTemplate(n int) {
	if n > s.templateDepth {
		s.excessClosers += n - s.templateDepth
		s.templateDepth = 0
		return
	}
	s.templateDepth -= n
}

func (s *state) decMarkup(n int) {
	if n > s.markupDepth {
		s.excessClosers += n - s.markupDepth
		s.markupDepth = 0
		return
	}
	s.markupDepth -= n
}
