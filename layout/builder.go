package layout

import (
	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/fontset"
	"github.com/npillmayer/styledtext/spans"
)

// Builder collects default attributes and attribute ranges for one source
// string, then resolves and shapes it into lines.
//
// AddRange calls must not decrease in start offset; the builder traces a
// contract violation otherwise but keeps going.
type Builder struct {
	text      string
	defaults  attr.Bundle
	store     spans.Store
	lastStart int
	lines     []Line // recycled across Build calls
}

// NewBuilder starts a builder over text with neutral default attributes.
func NewBuilder(text string) *Builder {
	return &Builder{
		text:     text,
		defaults: attr.DefaultBundle(),
	}
}

// SetDefault merges an attribute into the builder's defaults. Defaults apply
// wherever no pushed range overrides them.
func (b *Builder) SetDefault(a attr.Attribute) {
	b.defaults.Apply(a)
}

// AddRange records an attribute for the byte range [start, end) of the
// source string. The range is clamped to the string. Calls must come in
// non-decreasing order of start offset.
func (b *Builder) AddRange(start, end int, a attr.Attribute) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if end < start {
		end = start
	}
	if start < b.lastStart {
		tracer().Errorf("attribute ranges must be added in non-decreasing start order, got %d after %d", start, b.lastStart)
	}
	b.lastStart = start
	b.store.Push(start, end, a)
}

// Build resolves the attribute ranges into per-line span partitions, shapes
// each line, and repairs unrenderable glyphs. It needs exclusive access to
// the font system and does not block for it: ErrNotLoaded and ErrBusy from
// the system are passed through. A nil shaper skips shaping and repair,
// leaving only the resolved spans.
func (b *Builder) Build(sys *fontset.System, shaper Shaper) ([]Line, error) {
	x, err := sys.TryExclusive()
	if err != nil {
		return nil, err
	}
	defer x.Release()
	set := x.Set()

	defaults := set.FixBundle(b.defaults)
	b.lines = splitParagraphs(b.text, b.lines)
	for i := range b.lines {
		ln := &b.lines[i]
		if ln.Spans, err = b.store.Resolve(ln.Start, ln.End, defaults, set); err != nil {
			return nil, err
		}
		if shaper != nil {
			if err = shaper.ShapeLine(set, ln); err != nil {
				return nil, err
			}
		}
	}
	if shaper != nil {
		if err = b.repair(set, shaper, defaults); err != nil {
			return nil, err
		}
	}
	return b.lines, nil
}
