// Package display locates match spans within lines and renders them for
// terminal output.
//
// Span location is a pure function of (line, pattern); color rendering is a
// separate strategy injected by the command layer, so the core split logic
// never touches terminal state. All offsets are byte offsets into the line.
package display

import (
	"regexp"

	"github.com/fatih/color"
)

// Span marks the first occurrence of a pattern within a line,
// as half-open byte offsets [Start, End).
type Span struct {
	Start int
	End   int
}

// FirstMatch returns the span of the leftmost pattern occurrence in line.
// ok is false when the line does not match at all; callers that already
// filtered the line through a scan treat that as an invariant violation,
// not a user-facing error.
func FirstMatch(line string, pattern *regexp.Regexp) (span Span, ok bool) {
	loc := pattern.FindStringIndex(line)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// Split cuts the line at its first match into three parts whose
// concatenation reproduces the line byte-for-byte. The line terminator,
// when present, always lands in the suffix.
func Split(line string, pattern *regexp.Regexp) (prefix, match, suffix string, ok bool) {
	span, ok := FirstMatch(line, pattern)
	if !ok {
		return "", "", "", false
	}
	return line[:span.Start], line[span.Start:span.End], line[span.End:], true
}

// Highlighter renders the matched part of a line with a visual emphasis
// marker. The marker is purely cosmetic; disabled highlighters pass lines
// through verbatim.
type Highlighter struct {
	emphasis *color.Color
}

// NewHighlighter builds a highlighter that paints matches green when
// enabled. Enablement is decided once by the caller, normally from a TTY
// check on the destination stream.
func NewHighlighter(enabled bool) *Highlighter {
	emphasis := color.New(color.FgGreen)
	if enabled {
		emphasis.EnableColor()
	} else {
		emphasis.DisableColor()
	}
	return &Highlighter{emphasis: emphasis}
}

// Render returns the line with its first match emphasized. ok is false when
// the line does not match the pattern; the line comes back unchanged.
func (h *Highlighter) Render(line string, pattern *regexp.Regexp) (string, bool) {
	prefix, match, suffix, ok := Split(line, pattern)
	if !ok {
		return line, false
	}
	return prefix + h.emphasis.Sprint(match) + suffix, true
}
