/*
Package fontset resolves requested font attributes against the set of fonts
actually available, and guards access to that set during loading and shaping.

A [Set] pairs a font [Database] with an ordered list of default fonts; its
FixBundle method substitutes an available family when a requested one has no
match. A [System] owns a Set behind an exclusive-access guard and supports
loading the fonts in the background.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontset

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/attr"
)

// tracer writes to trace with key 'styledtext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.fonts")
}

// FontID identifies one font face within a Database.
type FontID int

// Database is the font catalogue a Set resolves against. Implementations
// will usually wrap a shaping backend's face collection.
type Database interface {
	// HasMatch reports whether any loaded face satisfies the bundle's
	// family, style and weight.
	HasMatch(attr.Bundle) bool
	// FamilyNames returns the family names of one face, primary name first.
	FamilyNames(FontID) []string
}

// Set is a font database together with the ordered default fonts used for
// fallback substitution. Defaults list the embedded fallback faces in load
// order, followed by the faces backing the generic families. The set is
// built once and treated as read-only afterwards.
type Set struct {
	DB       Database
	Defaults []FontID
}

// FixBundle returns a bundle guaranteed to have a matching face whenever the
// default fonts can provide one. A bundle that already matches is returned
// unchanged. Otherwise the default fonts' family names are substituted in
// order; if none matches, style and weight are reset to regular/normal and
// the substitution is tried once more. If that fails too, the original
// bundle is returned and the failure is traced.
func (s *Set) FixBundle(b attr.Bundle) attr.Bundle {
	if s.DB.HasMatch(b) {
		return b
	}
	fixed := b
	for pass := 0; pass < 2; pass++ {
		for _, id := range s.Defaults {
			for _, name := range s.DB.FamilyNames(id) {
				fixed.Family = attr.FamilyName(name)
				if s.DB.HasMatch(fixed) {
					tracer().Debugf("substituted family %q for %v", name, b.Family)
					return fixed
				}
			}
		}
		fixed.Style = attr.StyleRegular
		fixed.Weight = attr.WeightNormal
	}
	tracer().Errorf("no default font matches %v, shaping may produce missing glyphs", b.Family)
	return b
}
