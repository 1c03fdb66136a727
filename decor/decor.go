/*
Package decor indexes the text decorations implied by resolved spans, so
that a renderer can ask "which underlines and strikethroughs cover this
position" without rescanning span lists.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package decor

import (
	"cmp"
	"image/color"

	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/layout"
	"github.com/rdleal/intervalst/interval"
)

// Kind discriminates decoration variants.
type Kind uint8

const (
	Underline Kind = iota
	Strikethrough
)

func (k Kind) String() string {
	if k == Strikethrough {
		return "strikethrough"
	}
	return "underline"
}

// Decoration is one decoration run over a byte range of the whole source
// string. Weight and color are carried along so a renderer can scale and
// tint the line.
type Decoration struct {
	Start    int
	End      int
	Kind     Kind
	Weight   attr.Weight
	Color    color.RGBA
	HasColor bool
}

// Tree is an interval index over decorations. Decorations may overlap; the
// zero value is not usable, use NewTree.
type Tree struct {
	tree *interval.MultiValueSearchTree[Decoration, int]
}

// NewTree returns an empty decoration index.
func NewTree() *Tree {
	tree := interval.NewMultiValueSearchTree[Decoration](func(a, b int) int {
		return cmp.Compare(a, b)
	})
	return &Tree{tree: tree}
}

// Insert adds a decoration run.
func (t *Tree) Insert(d Decoration) {
	t.tree.Insert(d.Start, d.End, d)
}

// Query returns the decorations covering a byte position.
func (t *Tree) Query(pos int) []Decoration {
	all, _ := t.tree.AllIntersections(pos, pos+1)
	return all
}

// QueryRange returns the decorations overlapping [start, end).
func (t *Tree) QueryRange(start, end int) []Decoration {
	if start >= end {
		return nil
	}
	all, _ := t.tree.AllIntersections(start, end)
	return all
}

// FromLines builds the decoration index of resolved lines. Adjacent spans
// carrying the same decoration with the same weight and color are merged
// into one run; runs do not extend across line breaks.
func FromLines(lines []layout.Line) *Tree {
	t := NewTree()
	for i := range lines {
		ln := &lines[i]
		collectRuns(t, ln, Underline)
		collectRuns(t, ln, Strikethrough)
	}
	return t
}

func collectRuns(t *Tree, ln *layout.Line, kind Kind) {
	var run Decoration
	open := false
	flush := func() {
		if open {
			t.Insert(run)
			open = false
		}
	}
	for _, sp := range ln.Spans {
		on := sp.Attrs.Meta.Underline()
		if kind == Strikethrough {
			on = sp.Attrs.Meta.Strikethrough()
		}
		if !on {
			flush()
			continue
		}
		d := Decoration{
			Start:    ln.Start + sp.Start,
			End:      ln.Start + sp.End,
			Kind:     kind,
			Weight:   sp.Attrs.Meta.Weight(),
			Color:    sp.Attrs.Color,
			HasColor: sp.Attrs.HasColor,
		}
		if open && run.End == d.Start && sameStyle(run, d) {
			run.End = d.End
			continue
		}
		flush()
		run = d
		open = true
	}
	flush()
}

func sameStyle(a, b Decoration) bool {
	return a.Weight == b.Weight && a.Color == b.Color && a.HasColor == b.HasColor
}
