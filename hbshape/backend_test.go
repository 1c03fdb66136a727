package hbshape

import (
	"testing"

	"github.com/npillmayer/styledtext/attr"
)

func TestClassifySubfamily(t *testing.T) {
	cases := []struct {
		sub    string
		style  attr.Style
		weight attr.Weight
	}{
		{"Regular", attr.StyleRegular, attr.WeightNormal},
		{"Bold", attr.StyleRegular, attr.WeightBold},
		{"Bold Italic", attr.StyleItalic, attr.WeightBold},
		{"Oblique", attr.StyleItalic, attr.WeightNormal},
		{"SemiBold", attr.StyleRegular, attr.WeightSemiBold},
		{"DemiBold", attr.StyleRegular, attr.WeightSemiBold},
		{"Black", attr.StyleRegular, attr.WeightBlack},
		{"Light Italic", attr.StyleItalic, attr.WeightLight},
		{"Medium", attr.StyleRegular, attr.WeightMedium},
		{"Thin", attr.StyleRegular, attr.WeightThin},
	}
	for _, c := range cases {
		style, weight := classifySubfamily(c.sub)
		if style != c.style || weight != c.weight {
			t.Errorf("classifySubfamily(%q) = (%v, %d), want (%v, %d)",
				c.sub, style, weight, c.style, c.weight)
		}
	}
}

func TestGenericOf(t *testing.T) {
	cases := []struct {
		family string
		want   attr.Generic
	}{
		{"DejaVu Sans", attr.GenericSansSerif},
		{"DejaVu Serif", attr.GenericSerif},
		{"DejaVu Sans Mono", attr.GenericMonospace},
		{"Courier", attr.GenericSansSerif}, // no hint in the name
	}
	for _, c := range cases {
		e := faceEntry{families: []string{c.family}}
		if got := genericOf(e); got != c.want {
			t.Errorf("genericOf(%q) = %v, want %v", c.family, got, c.want)
		}
	}
}

func catalogueForTest() *Backend {
	return &Backend{faces: []faceEntry{
		{families: []string{"Demo Sans"}, style: attr.StyleRegular, weight: attr.WeightNormal},
		{families: []string{"Demo Sans"}, style: attr.StyleRegular, weight: attr.WeightBold},
		{families: []string{"Demo Sans"}, style: attr.StyleItalic, weight: attr.WeightNormal},
		{families: []string{"Demo Serif", "Demo Serif Text"}, style: attr.StyleRegular, weight: attr.WeightNormal},
	}}
}

func TestMatchSelectsNearestWeight(t *testing.T) {
	b := catalogueForTest()
	bundle := attr.DefaultBundle()
	bundle.Family = attr.FamilyName("Demo Sans")
	bundle.Weight = attr.WeightSemiBold
	id, ok := b.match(bundle)
	if !ok || id != 1 {
		t.Errorf("match = (%d, %t), want the bold face (1)", id, ok)
	}
}

func TestMatchRequiresStyle(t *testing.T) {
	b := catalogueForTest()
	bundle := attr.DefaultBundle()
	bundle.Family = attr.FamilyName("Demo Serif")
	bundle.Style = attr.StyleItalic
	if b.HasMatch(bundle) {
		t.Errorf("no italic serif face is loaded, HasMatch must fail")
	}
	bundle.Style = attr.StyleRegular
	if !b.HasMatch(bundle) {
		t.Errorf("regular serif face is loaded, HasMatch must succeed")
	}
}

func TestMatchSecondaryFamilyName(t *testing.T) {
	b := catalogueForTest()
	bundle := attr.DefaultBundle()
	bundle.Family = attr.FamilyName("demo serif text") // case-insensitive
	id, ok := b.match(bundle)
	if !ok || id != 3 {
		t.Errorf("match = (%d, %t), want the serif face (3)", id, ok)
	}
}

func TestMatchGenericFamily(t *testing.T) {
	b := catalogueForTest()
	bundle := attr.DefaultBundle()
	bundle.Family = attr.Monospace
	if b.HasMatch(bundle) {
		t.Errorf("no monospace face is loaded, HasMatch must fail")
	}
	bundle.Family = attr.Serif
	id, ok := b.match(bundle)
	if !ok || id != 3 {
		t.Errorf("match = (%d, %t), want the serif face (3)", id, ok)
	}
}

func TestNewSetDefaultsInLoadOrder(t *testing.T) {
	b := catalogueForTest()
	set := b.NewSet()
	if set.DB != b {
		t.Fatal("the backend must serve as the set's database")
	}
	if len(set.Defaults) != len(b.faces) {
		t.Fatalf("defaults = %v, want every face once", set.Defaults)
	}
	for i, id := range set.Defaults {
		if int(id) != i {
			t.Errorf("defaults[%d] = %d, want load order", i, id)
		}
	}
}

func TestRuneOffsets(t *testing.T) {
	text := "aä€"
	offs := runeOffsets(text, 3)
	want := []int{0, 1, 3, 6}
	if len(offs) != len(want) {
		t.Fatalf("offsets = %v, want %v", offs, want)
	}
	for i := range want {
		if offs[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", offs, want)
		}
	}
}
