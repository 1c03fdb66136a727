package layout

import (
	"strings"

	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/fontset"
)

// fillPass enumerates the corrective passes of the repair loop.
type fillPass uint8

const (
	fillFont  fillPass = iota // substitute a generic family
	fillStyle                 // reset style and weight
)

// hole is a line-relative byte range rendered with missing glyphs.
type hole struct {
	start int
	end   int
}

// findHoles collects the byte ranges covered by '.notdef' glyphs, merging
// contiguous ones.
func findHoles(ln *Line) []hole {
	var holes []hole
	for _, g := range ln.Glyphs {
		if g.ID != MissingGlyph {
			continue
		}
		if n := len(holes); n > 0 && holes[n-1].end == g.Start {
			holes[n-1].end = g.End
			continue
		}
		holes = append(holes, hole{start: g.Start, end: g.End})
	}
	return holes
}

// repair runs up to two corrective passes over the shaped lines. The first
// pass replaces the font family of every hole with a generic family guessed
// from the family in effect there; the second resets style and weight.
// Holes surviving both passes are traced and left alone.
func (b *Builder) repair(set *fontset.Set, shaper Shaper, defaults attr.Bundle) error {
	for _, pass := range []fillPass{fillFont, fillStyle} {
		dirty, err := b.fillHoles(pass)
		if err != nil {
			return err
		}
		if len(dirty) == 0 {
			return nil
		}
		for _, i := range dirty {
			ln := &b.lines[i]
			if ln.Spans, err = b.store.Resolve(ln.Start, ln.End, defaults, set); err != nil {
				return err
			}
			if err = shaper.ShapeLine(set, ln); err != nil {
				return err
			}
		}
	}
	for i := range b.lines {
		if holes := findHoles(&b.lines[i]); len(holes) > 0 {
			tracer().Infof("line %d keeps %d unrenderable range(s) after repair", i, len(holes))
		}
	}
	return nil
}

// fillHoles pushes corrective attribute overrides for every hole and
// returns the indices of the lines that need re-resolving. Overrides are
// pushed with whole-string offsets, matching the store's coordinates.
func (b *Builder) fillHoles(pass fillPass) ([]int, error) {
	var dirty []int
	for i := range b.lines {
		ln := &b.lines[i]
		holes := findHoles(ln)
		if len(holes) == 0 {
			continue
		}
		dirty = append(dirty, i)
		for _, h := range holes {
			start := ln.Start + h.start
			end := ln.Start + h.end
			switch pass {
			case fillFont:
				fam := spanFamily(ln, h.start)
				b.store.Push(start, end, attr.FontFamily(genericForFamily(fam)))
				tracer().Debugf("hole [%d,%d): retrying with %v", start, end, genericForFamily(fam))
			case fillStyle:
				b.store.Push(start, end, attr.FontStyle(attr.StyleRegular))
				b.store.Push(start, end, attr.FontWeight(attr.WeightNormal))
				tracer().Debugf("hole [%d,%d): retrying with regular style and weight", start, end)
			}
		}
	}
	return dirty, nil
}

// spanFamily returns the font family in effect at a line-relative offset.
func spanFamily(ln *Line, pos int) attr.Family {
	for _, sp := range ln.Spans {
		if sp.Start <= pos && pos < sp.End {
			return sp.Attrs.Family
		}
	}
	return attr.SansSerif
}

// genericForFamily guesses the generic family most likely to cover a hole
// left by the given family.
func genericForFamily(f attr.Family) attr.Family {
	switch f.Generic {
	case attr.GenericNone:
		name := strings.ToLower(f.Name)
		switch {
		case strings.Contains(name, "serif"):
			return attr.Serif
		case strings.Contains(name, "mono"):
			return attr.Monospace
		default:
			return attr.SansSerif
		}
	case attr.GenericCursive:
		return attr.Serif
	case attr.GenericFantasy:
		return attr.SansSerif
	}
	return f
}
