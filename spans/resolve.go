package spans

import (
	"fmt"

	"github.com/npillmayer/styledtext/attr"
)

// Resolve flattens the stored attribute ranges over the query range
// [start, end) into a sequence of non-overlapping spans. Span offsets are
// rebased to the query range, so the first span starts at 0 and the spans
// tile [0, end-start) exactly.
//
// Composition starts from defaults; active attributes are applied in push
// order, so on overlap the last pushed attribute wins. If fixer is non-nil,
// every composed bundle is passed through it before emission.
//
// Resolve is read-only on the store and may be called repeatedly with
// different query ranges.
func (s *Store) Resolve(start, end int, defaults attr.Bundle, fixer Fixer) ([]Span, error) {
	if end < start {
		end = start
	}
	var active []int

	// Carry-in: ranges beginning before the query range may still cover it.
	bx := 0
	for ; bx < len(s.boundaries) && s.boundaries[bx].off < start; bx++ {
		active = applyEvents(active, s.boundaries[bx].events)
	}

	var result []Span
	last := 0
	for ; bx < len(s.boundaries) && s.boundaries[bx].off < end; bx++ {
		b := s.boundaries[bx]
		k := b.off - start
		if k > last {
			bundle, err := s.compose(active, defaults, fixer)
			if err != nil {
				return nil, err
			}
			result = append(result, Span{Start: last, End: k, Attrs: bundle})
			last = k
		}
		active = applyEvents(active, b.events)
	}
	if n := end - start; n > last {
		bundle, err := s.compose(active, defaults, fixer)
		if err != nil {
			return nil, err
		}
		result = append(result, Span{Start: last, End: n, Attrs: bundle})
	}
	return result, nil
}

// compose builds the attribute bundle for the currently active set.
func (s *Store) compose(active []int, defaults attr.Bundle, fixer Fixer) (attr.Bundle, error) {
	bundle := defaults
	for _, inx := range active {
		if inx >= len(s.attrs) {
			return bundle, fmt.Errorf("span resolution: boundary event references unknown attribute %d", inx)
		}
		bundle.Apply(s.attrs[inx])
	}
	if fixer != nil {
		bundle = fixer.FixBundle(bundle)
	}
	return bundle, nil
}

// applyEvents updates the activation list. Deactivation removes by value and
// preserves the order of the remaining entries, keeping composition stable.
func applyEvents(active []int, events []event) []int {
	for _, e := range events {
		if e.start {
			active = append(active, e.index)
			continue
		}
		for i, inx := range active {
			if inx == e.index {
				active = append(active[:i], active[i+1:]...)
				break
			}
		}
	}
	return active
}
