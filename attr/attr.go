/*
Package attr holds the text-attribute data model for styled-text resolution.

An [Attribute] is one styling instruction declared over a byte range of text;
a [Bundle] is the fully composed attribute set of one resolved span. The
per-span side-channel word is implemented by [Metadata].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package attr

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext.attr'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.attr")
}

// Weight is a numeric font weight on the usual OpenType scale of 1–1000.
type Weight uint16

// Common font weights.
const (
	WeightThin     Weight = 100
	WeightLight    Weight = 300
	WeightNormal   Weight = 400
	WeightMedium   Weight = 500
	WeightSemiBold Weight = 600
	WeightBold     Weight = 700
	WeightBlack    Weight = 900
)

// Style selects between the upright and the italic variant of a family.
type Style uint8

const (
	StyleRegular Style = iota
	StyleItalic
)

func (s Style) String() string {
	if s == StyleItalic {
		return "Italic"
	}
	return "Regular"
}

// Generic identifies one of the generic font families, in the CSS sense.
// GenericNone denotes a concrete named family instead.
type Generic uint8

const (
	GenericNone Generic = iota
	GenericSansSerif
	GenericSerif
	GenericMonospace
	GenericCursive
	GenericFantasy
)

func (g Generic) String() string {
	switch g {
	case GenericSansSerif:
		return "sans-serif"
	case GenericSerif:
		return "serif"
	case GenericMonospace:
		return "monospace"
	case GenericCursive:
		return "cursive"
	case GenericFantasy:
		return "fantasy"
	}
	return "none"
}

// Family is either a generic font family or a concrete named one.
type Family struct {
	Generic Generic
	Name    string
}

// FamilyName returns a Family for a concrete family name.
func FamilyName(name string) Family {
	return Family{Name: name}
}

// SansSerif, Serif and Monospace are the generic families the fallback
// resolver substitutes for unavailable fonts.
var (
	SansSerif = Family{Generic: GenericSansSerif}
	Serif     = Family{Generic: GenericSerif}
	Monospace = Family{Generic: GenericMonospace}
)

func (f Family) String() string {
	if f.Generic == GenericNone {
		return f.Name
	}
	return f.Generic.String()
}

// Kind discriminates the attribute variants.
type Kind uint8

const (
	KindFontFamily Kind = iota
	KindFontSize
	KindWeight
	KindStyle
	KindUnderline
	KindStrikethrough
	KindTextColor
)

// Attribute is one styling instruction for a range of text. Attributes are
// immutable values; use the constructor functions below.
type Attribute struct {
	Kind   Kind
	Family Family
	Size   float64
	Weight Weight
	Style  Style
	Flag   bool
	Color  color.RGBA
}

// FontFamily requests a font family.
func FontFamily(f Family) Attribute {
	return Attribute{Kind: KindFontFamily, Family: f}
}

// FontSize requests a per-range font size. Variable per-span sizes are not
// supported by the span resolver; the attribute is accepted but has no
// effect besides a diagnostic.
func FontSize(points float64) Attribute {
	return Attribute{Kind: KindFontSize, Size: points}
}

// FontWeight requests a font weight.
func FontWeight(w Weight) Attribute {
	return Attribute{Kind: KindWeight, Weight: w}
}

// FontStyle requests an upright or italic style.
func FontStyle(s Style) Attribute {
	return Attribute{Kind: KindStyle, Style: s}
}

// Underline switches underlining on or off.
func Underline(on bool) Attribute {
	return Attribute{Kind: KindUnderline, Flag: on}
}

// Strikethrough switches strikethrough on or off.
func Strikethrough(on bool) Attribute {
	return Attribute{Kind: KindStrikethrough, Flag: on}
}

// TextColor requests a text color. Setting the default text color removes a
// previously applied color override.
func TextColor(c color.RGBA) Attribute {
	return Attribute{Kind: KindTextColor, Color: c}
}

// DefaultTextColor is the color treated as "no color override".
var DefaultTextColor = color.RGBA{A: 0xff}

func (a Attribute) String() string {
	switch a.Kind {
	case KindFontFamily:
		return fmt.Sprintf("FontFamily(%s)", a.Family)
	case KindFontSize:
		return fmt.Sprintf("FontSize(%g)", a.Size)
	case KindWeight:
		return fmt.Sprintf("Weight(%d)", a.Weight)
	case KindStyle:
		return fmt.Sprintf("Style(%s)", a.Style)
	case KindUnderline:
		return fmt.Sprintf("Underline(%t)", a.Flag)
	case KindStrikethrough:
		return fmt.Sprintf("Strikethrough(%t)", a.Flag)
	case KindTextColor:
		return fmt.Sprintf("TextColor(%v)", a.Color)
	}
	return "Attribute(?)"
}

// Bundle is the composed attribute set of one resolved span. Scalar fields
// hold the last applied value; underline, strikethrough and boldness are
// additionally packed into Meta for consumers of the side-channel word.
type Bundle struct {
	Family   Family
	Weight   Weight
	Style    Style
	Color    color.RGBA
	HasColor bool
	Meta     Metadata
}

// DefaultBundle returns the neutral attribute bundle: generic sans-serif,
// normal weight, regular style, no decorations, no color override.
func DefaultBundle() Bundle {
	return Bundle{
		Family: SansSerif,
		Weight: WeightNormal,
		Meta:   NewMetadata(),
	}
}

// Apply merges a single attribute into the bundle. Scalar fields are
// overwritten, so the last applied attribute wins; Underline and
// Strikethrough set the corresponding metadata bits. FontSize is accepted
// but ignored, apart from a diagnostic.
func (b *Bundle) Apply(a Attribute) {
	switch a.Kind {
	case KindFontFamily:
		b.Family = a.Family
	case KindFontSize:
		// Per-span font sizes cannot be represented in the span model.
		tracer().Errorf("per-span font sizes are not supported, ignoring FontSize(%g)", a.Size)
	case KindWeight:
		b.Weight = a.Weight
		b.Meta.SetWeight(a.Weight)
	case KindStyle:
		b.Style = a.Style
	case KindUnderline:
		b.Meta.SetUnderline(a.Flag)
	case KindStrikethrough:
		b.Meta.SetStrikethrough(a.Flag)
	case KindTextColor:
		if a.Color == DefaultTextColor {
			b.Color = color.RGBA{}
			b.HasColor = false
		} else {
			b.Color = a.Color
			b.HasColor = true
		}
	}
}
