package layout

import (
	"testing"

	"github.com/npillmayer/styledtext/attr"
)

func TestFindHolesCoalesces(t *testing.T) {
	ln := &Line{Glyphs: []Glyph{
		{ID: 65, Start: 0, End: 1},
		{ID: MissingGlyph, Start: 1, End: 2},
		{ID: MissingGlyph, Start: 2, End: 4},
		{ID: 66, Start: 4, End: 5},
		{ID: MissingGlyph, Start: 6, End: 7},
	}}
	holes := findHoles(ln)
	if len(holes) != 2 {
		t.Fatalf("expected 2 holes, got %v", holes)
	}
	if holes[0] != (hole{start: 1, end: 4}) {
		t.Errorf("contiguous missing glyphs must merge, got %v", holes[0])
	}
	if holes[1] != (hole{start: 6, end: 7}) {
		t.Errorf("second hole = %v, want [6,7)", holes[1])
	}
}

func TestGenericForFamily(t *testing.T) {
	cases := []struct {
		in   attr.Family
		want attr.Family
	}{
		{attr.FamilyName("DejaVu Serif"), attr.Serif},
		{attr.FamilyName("Fira Mono"), attr.Monospace},
		{attr.FamilyName("Comic Sans MS"), attr.SansSerif},
		{attr.Family{Generic: attr.GenericCursive}, attr.Serif},
		{attr.Family{Generic: attr.GenericFantasy}, attr.SansSerif},
		{attr.Monospace, attr.Monospace},
		{attr.Serif, attr.Serif},
	}
	for _, c := range cases {
		if got := genericForFamily(c.in); got != c.want {
			t.Errorf("genericForFamily(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRepairSubstitutesGenericFamily(t *testing.T) {
	// Only the generic monospace family renders; the named default does not,
	// but its name hints at monospace.
	sh := &fakeShaper{renders: func(b attr.Bundle, r rune) bool {
		return b.Family.Generic == attr.GenericMonospace
	}}
	b := NewBuilder("abcd")
	b.SetDefault(attr.FontFamily(attr.FamilyName("Fira Mono")))
	lines, err := b.Build(testSystem(), sh)
	if err != nil {
		t.Fatal(err)
	}
	if sh.calls != 2 {
		t.Errorf("shaper called %d times, want initial pass + one repair pass", sh.calls)
	}
	for _, g := range lines[0].Glyphs {
		if g.ID == MissingGlyph {
			t.Fatalf("hole not repaired, glyphs = %v", lines[0].Glyphs)
		}
	}
}

func TestRepairResetsStyleAndWeight(t *testing.T) {
	// Nothing renders in italic or bold; the family is fine.
	sh := &fakeShaper{renders: func(b attr.Bundle, r rune) bool {
		return b.Style == attr.StyleRegular && b.Weight == attr.WeightNormal
	}}
	b := NewBuilder("abcd")
	b.AddRange(0, 4, attr.FontStyle(attr.StyleItalic))
	b.AddRange(0, 4, attr.FontWeight(attr.WeightBold))
	lines, err := b.Build(testSystem(), sh)
	if err != nil {
		t.Fatal(err)
	}
	if sh.calls != 3 {
		t.Errorf("shaper called %d times, want initial pass + two repair passes", sh.calls)
	}
	for _, g := range lines[0].Glyphs {
		if g.ID == MissingGlyph {
			t.Fatalf("hole not repaired after style reset, glyphs = %v", lines[0].Glyphs)
		}
	}
}

func TestRepairGivesUpAfterTwoPasses(t *testing.T) {
	sh := &fakeShaper{renders: func(b attr.Bundle, r rune) bool {
		return r != 'X'
	}}
	b := NewBuilder("aXb")
	lines, err := b.Build(testSystem(), sh)
	if err != nil {
		t.Fatal(err)
	}
	if sh.calls != 3 {
		t.Errorf("shaper called %d times, want exactly 3 (bounded repair)", sh.calls)
	}
	holes := findHoles(&lines[0])
	if len(holes) != 1 || holes[0] != (hole{start: 1, end: 2}) {
		t.Errorf("unrenderable rune must remain a hole, got %v", holes)
	}
}

func TestRepairOnlyReshapesDirtyLines(t *testing.T) {
	sh := &fakeShaper{renders: func(b attr.Bundle, r rune) bool {
		if r != 'X' {
			return true
		}
		return b.Family.Generic == attr.GenericSansSerif
	}}
	b := NewBuilder("ok\naXb")
	b.SetDefault(attr.FontFamily(attr.FamilyName("Helvetica")))
	lines, err := b.Build(testSystem(), sh)
	if err != nil {
		t.Fatal(err)
	}
	// 2 initial shapes + 1 reshape of the dirty line only.
	if sh.calls != 3 {
		t.Errorf("shaper called %d times, want 3", sh.calls)
	}
	for i := range lines {
		if holes := findHoles(&lines[i]); len(holes) > 0 {
			t.Errorf("line %d still has holes: %v", i, holes)
		}
	}
}
