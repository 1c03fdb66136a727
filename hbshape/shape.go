package hbshape

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/styledtext/fontset"
	"github.com/npillmayer/styledtext/layout"
	"golang.org/x/text/unicode/bidi"
)

// ShapeLine shapes a line span by span and is part of the layout.Shaper
// contract. Each span is shaped as one run with the whole line as context;
// glyphs are emitted in logical order with byte ranges relative to the
// line, so that the hole-repair pass can map missing glyphs back to source
// text. The set parameter is unused: the backend is its own database.
func (b *Backend) ShapeLine(set *fontset.Set, ln *layout.Line) error {
	runes := []rune(ln.Text)
	offs := runeOffsets(ln.Text, len(runes))

	dir := di.DirectionLTR
	if ln.Dir == bidi.RightToLeft {
		dir = di.DirectionRTL
	}

	ln.Glyphs = ln.Glyphs[:0]
	runeIdx, byteIdx := 0, 0
	for _, sp := range ln.Spans {
		start, end := sp.Start, sp.End
		if end > len(ln.Text) { // span may cover the virtual newline
			end = len(ln.Text)
		}
		if start >= end {
			continue
		}
		// spans tile the line, so rune indices advance monotonically
		for byteIdx < start {
			byteIdx = offs[runeIdx+1]
			runeIdx++
		}
		runStart := runeIdx
		for byteIdx < end {
			byteIdx = offs[runeIdx+1]
			runeIdx++
		}
		runEnd := runeIdx

		face := b.pickFace(sp.Attrs)
		if face == nil {
			tracer().Errorf("no faces loaded, cannot shape %q", ln.Text[start:end])
			continue
		}
		out := b.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  runStart,
			RunEnd:    runEnd,
			Direction: dir,
			Face:      face,
			Size:      b.size,
		})
		appendGlyphs(ln, out.Glyphs, offs, runEnd, dir)
	}
	return nil
}

// appendGlyphs converts shaped glyphs to line glyphs in logical order.
// Cluster indices are rune positions in the line; a glyph's byte range runs
// from its cluster to the next distinct cluster (or the run end).
func appendGlyphs(ln *layout.Line, glyphs []shaping.Glyph, offs []int, runEnd int, dir di.Direction) {
	rtl := dir == di.DirectionRTL
	step := 1
	i := 0
	if rtl { // visual order is reversed, walk backwards for logical order
		step = -1
		i = len(glyphs) - 1
	}
	for ; i >= 0 && i < len(glyphs); i += step {
		g := glyphs[i]
		cluster := g.ClusterIndex
		next := runEnd
		for j := i + step; j >= 0 && j < len(glyphs); j += step {
			if glyphs[j].ClusterIndex != cluster {
				next = glyphs[j].ClusterIndex
				break
			}
		}
		ln.Glyphs = append(ln.Glyphs, layout.Glyph{
			ID:       layout.GlyphID(g.GlyphID),
			Start:    offs[cluster],
			End:      offs[next],
			XAdvance: g.XAdvance,
		})
	}
}

// runeOffsets returns the byte offset of every rune plus a final entry
// holding len(text).
func runeOffsets(text string, runeCount int) []int {
	offs := make([]int, 0, runeCount+1)
	for i := range text {
		offs = append(offs, i)
	}
	return append(offs, len(text))
}
