/*
Package styledtext resolves overlapping text-attribute ranges into flat,
non-overlapping span partitions, with font-availability fixing and repair
of unrenderable glyph runs.

The root package offers convenience wrappers over the pipeline packages:
attr holds the attribute data model, spans the range store and flattener,
fontset the fallback resolver and font-system guard, layout the line
builder with its hole-repair loop, and hbshape the go-text/typesetting
backend.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtext

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/fontset"
	"github.com/npillmayer/styledtext/layout"
	"github.com/npillmayer/styledtext/spans"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}

// RangeAttribute pairs an attribute with the byte range it applies to.
type RangeAttribute struct {
	Start int
	End   int
	Attr  attr.Attribute
}

// ResolveString flattens attribute ranges over a whole string into one span
// partition, without line splitting, font fixing or shaping.
//
// This is a convenience API for the common case of inspecting how ranges
// compose. Clients who need per-paragraph handling, font fallback or glyph
// repair should use the layout package directly.
func ResolveString(text string, defaults []attr.Attribute, ranges []RangeAttribute) ([]spans.Span, error) {
	if text == "" {
		return nil, nil
	}
	bundle := attr.DefaultBundle()
	for _, a := range defaults {
		bundle.Apply(a)
	}
	var store spans.Store
	for _, r := range ranges {
		store.Push(r.Start, r.End, r.Attr)
	}
	tracer().Debugf("resolving %d attribute range(s) over %d bytes", len(ranges), len(text))
	return store.Resolve(0, len(text), bundle, nil)
}

// LayoutString runs the full pipeline: split text into lines, resolve spans
// with font fixing, shape, and repair holes. It needs exclusive access to
// the font system; fontset.ErrBusy and fontset.ErrNotLoaded are passed
// through from the system.
func LayoutString(text string, sys *fontset.System, shaper layout.Shaper,
	defaults []attr.Attribute, ranges []RangeAttribute) ([]layout.Line, error) {
	b := layout.NewBuilder(text)
	for _, a := range defaults {
		b.SetDefault(a)
	}
	for _, r := range ranges {
		b.AddRange(r.Start, r.End, r.Attr)
	}
	return b.Build(sys, shaper)
}
