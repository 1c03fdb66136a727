package decor

import (
	"testing"

	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/layout"
	"github.com/npillmayer/styledtext/spans"
)

func span(start, end int, apply ...attr.Attribute) spans.Span {
	b := attr.DefaultBundle()
	for _, a := range apply {
		b.Apply(a)
	}
	return spans.Span{Start: start, End: end, Attrs: b}
}

func TestFromLinesMergesContiguousRuns(t *testing.T) {
	// Two adjacent underlined spans differing only in style weight-neutral
	// attributes must collapse into one run.
	lines := []layout.Line{{
		Start: 0, End: 10,
		Spans: []spans.Span{
			span(0, 3, attr.Underline(true)),
			span(3, 7, attr.Underline(true), attr.FontStyle(attr.StyleItalic)),
			span(7, 10),
		},
	}}
	tree := FromLines(lines)
	got := tree.Query(4)
	if len(got) != 1 {
		t.Fatalf("expected one decoration at offset 4, got %v", got)
	}
	if got[0].Start != 0 || got[0].End != 7 || got[0].Kind != Underline {
		t.Errorf("merged run = %+v, want underline [0,7)", got[0])
	}
	if cov := tree.Query(8); len(cov) != 0 {
		t.Errorf("offset 8 is undecorated, got %v", cov)
	}
}

func TestFromLinesKeepsDistinctWeightsApart(t *testing.T) {
	lines := []layout.Line{{
		Start: 0, End: 8,
		Spans: []spans.Span{
			span(0, 4, attr.Underline(true)),
			span(4, 8, attr.Underline(true), attr.FontWeight(attr.WeightBold)),
		},
	}}
	tree := FromLines(lines)
	got := tree.QueryRange(0, 8)
	if len(got) != 2 {
		t.Fatalf("expected two separate runs, got %v", got)
	}
}

func TestFromLinesUsesAbsoluteOffsets(t *testing.T) {
	lines := []layout.Line{
		{Start: 0, End: 4, Spans: []spans.Span{span(0, 4)}},
		{Start: 4, End: 9, Spans: []spans.Span{span(0, 5, attr.Strikethrough(true))}},
	}
	tree := FromLines(lines)
	if got := tree.Query(2); len(got) != 0 {
		t.Errorf("line 0 carries no decorations, got %v", got)
	}
	got := tree.Query(6)
	if len(got) != 1 || got[0].Kind != Strikethrough {
		t.Fatalf("expected a strikethrough at offset 6, got %v", got)
	}
	if got[0].Start != 4 || got[0].End != 9 {
		t.Errorf("run = [%d,%d), want whole second line [4,9)", got[0].Start, got[0].End)
	}
}

func TestUnderlineAndStrikethroughCoexist(t *testing.T) {
	lines := []layout.Line{{
		Start: 0, End: 5,
		Spans: []spans.Span{
			span(0, 5, attr.Underline(true), attr.Strikethrough(true)),
		},
	}}
	tree := FromLines(lines)
	got := tree.Query(2)
	if len(got) != 2 {
		t.Fatalf("expected both decoration kinds, got %v", got)
	}
}
