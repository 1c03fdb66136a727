/*
Package layout drives the styled-text resolution pipeline over whole
strings: it splits text into paragraph lines, resolves attribute spans per
line, hands the lines to a shaper, and repairs unrenderable glyphs by
re-resolving with corrective attribute overrides.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/fontset"
	"github.com/npillmayer/styledtext/spans"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// tracer writes to trace with key 'styledtext.layout'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.layout")
}

// GlyphID is a glyph index within a font face.
type GlyphID uint32

// MissingGlyph is the '.notdef' glyph index. Shapers emit it for characters
// the selected face cannot render; the repair loop treats runs of it as
// holes to fix.
const MissingGlyph GlyphID = 0

// Glyph is one shaped glyph. Start and End delimit the source bytes the
// glyph renders, relative to the start of its line.
type Glyph struct {
	ID       GlyphID
	Start    int
	End      int
	XAdvance fixed.Int26_6
}

// Line is one paragraph of the source string. Start and End are byte
// offsets into the whole string; End includes the terminating newline, so
// consecutive lines tile the string. Spans and Glyphs use line-relative
// offsets.
type Line struct {
	Start  int
	End    int
	Text   string
	Dir    bidi.Direction
	Spans  []spans.Span
	Glyphs []Glyph
}

// Shaper turns a line's resolved spans into glyphs, writing them into
// line.Glyphs. Implementations select faces from the set per span.
type Shaper interface {
	ShapeLine(set *fontset.Set, line *Line) error
}

// splitParagraphs cuts text at newlines. Each line's End covers the
// newline; the base direction is determined per paragraph. lines is
// recycled if it has capacity.
func splitParagraphs(text string, lines []Line) []Line {
	lines = lines[:0]
	start := 0
	for start <= len(text) {
		rest := text[start:]
		n := len(rest)
		end := start + n
		for i := 0; i < len(rest); i++ {
			if rest[i] == '\n' {
				n = i
				end = start + i + 1
				break
			}
		}
		lines = append(lines, Line{
			Start: start,
			End:   end,
			Text:  rest[:n],
			Dir:   baseDirection(rest[:n]),
		})
		if end == start+n { // no newline found, last paragraph
			break
		}
		start = end
	}
	return lines
}

func baseDirection(text string) bidi.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return bidi.LeftToRight
	}
	if !p.IsLeftToRight() {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}
