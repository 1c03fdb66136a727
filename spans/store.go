/*
Package spans implements the range store and the span flattener of the
styled-text resolution pipeline.

Clients push text attributes for byte ranges into a [Store]; resolving a
query range flattens the overlapping ranges into a non-overlapping sequence
of [Span]s, each carrying a fully composed attribute bundle. Later pushes win
over earlier ones wherever ranges overlap.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package spans

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/attr"
)

// tracer writes to trace with key 'styledtext.spans'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.spans")
}

// Span is one resolved segment of a query range. Start and End are byte
// offsets relative to the start of the query range; a resolved sequence of
// spans tiles the query range without gaps or overlaps.
type Span struct {
	Start int
	End   int
	Attrs attr.Bundle
}

// Fixer post-processes a composed bundle, typically substituting an
// unavailable font family for an available one. A nil Fixer leaves bundles
// untouched.
type Fixer interface {
	FixBundle(attr.Bundle) attr.Bundle
}

// event activates or deactivates one stored attribute.
type event struct {
	start bool
	index int // into Store.attrs
}

// boundary collects the events taking effect at one byte offset. Events keep
// their insertion order, so that a range starting and ending at the same
// offset activates and immediately deactivates.
type boundary struct {
	off    int
	events []event
}

// Store accumulates attribute ranges. Attributes are kept in push order and
// referenced by index from boundary events; the boundary list is kept sorted
// by offset. The zero value is an empty store ready for use.
type Store struct {
	attrs      []attr.Attribute
	boundaries []boundary
}

// Push records an attribute for the byte range [start, end). Ranges may
// overlap arbitrarily; on overlap, attributes pushed later take precedence.
// An empty range is recorded but never becomes visible in resolved spans.
func (s *Store) Push(start, end int, a attr.Attribute) {
	if end < start {
		end = start
	}
	inx := len(s.attrs)
	s.attrs = append(s.attrs, a)
	s.insertEvent(start, event{start: true, index: inx})
	s.insertEvent(end, event{start: false, index: inx})
	tracer().Debugf("pushed %v for [%d,%d)", a, start, end)
}

// Len returns the number of pushed attribute ranges.
func (s *Store) Len() int {
	return len(s.attrs)
}

func (s *Store) insertEvent(off int, e event) {
	i := sort.Search(len(s.boundaries), func(i int) bool {
		return s.boundaries[i].off >= off
	})
	if i < len(s.boundaries) && s.boundaries[i].off == off {
		s.boundaries[i].events = append(s.boundaries[i].events, e)
		return
	}
	s.boundaries = append(s.boundaries, boundary{})
	copy(s.boundaries[i+1:], s.boundaries[i:])
	s.boundaries[i] = boundary{off: off, events: []event{e}}
}
