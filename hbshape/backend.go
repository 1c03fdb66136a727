/*
Package hbshape backs the styled-text pipeline with go-text/typesetting:
font faces are parsed from raw OpenType data, catalogued by family name,
style and weight, and lines are shaped with the HarfBuzz port.

The [Backend] serves both collaborator roles of the pipeline: it is the
font database consulted by the fallback resolver and the shaper invoked by
the layout builder.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hbshape

import (
	"bytes"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/fontset"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'styledtext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.fonts")
}

// faceEntry is one catalogued font face.
type faceEntry struct {
	face     *font.Face
	families []string // primary name first
	style    attr.Style
	weight   attr.Weight
}

// Backend holds the loaded faces and a HarfBuzz shaper.
type Backend struct {
	faces  []faceEntry
	shaper shaping.HarfbuzzShaper
	size   fixed.Int26_6
}

// NewBackend creates an empty backend shaping at the given point size.
func NewBackend(pointSize int) *Backend {
	if pointSize <= 0 {
		pointSize = 12
	}
	return &Backend{size: fixed.I(pointSize)}
}

// LoadFont parses raw TTF/OTF data and registers the face. Family names are
// taken from the font's naming table (family and typographic family);
// style and weight are inferred from the subfamily names.
func (b *Backend) LoadFont(data []byte) (fontset.FontID, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return 0, err
	}
	var buf sfnt.Buffer
	entry := faceEntry{face: face, weight: attr.WeightNormal}
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDTypographicFamily} {
		if name, err := sf.Name(&buf, id); err == nil && name != "" {
			entry.families = appendFamily(entry.families, name)
		}
	}
	if len(entry.families) == 0 {
		if name, err := sf.Name(&buf, sfnt.NameIDFull); err == nil {
			entry.families = append(entry.families, name)
		}
	}
	for _, id := range []sfnt.NameID{sfnt.NameIDSubfamily, sfnt.NameIDTypographicSubfamily} {
		if sub, err := sf.Name(&buf, id); err == nil {
			style, weight := classifySubfamily(sub)
			if style == attr.StyleItalic {
				entry.style = attr.StyleItalic
			}
			if weight != attr.WeightNormal {
				entry.weight = weight
			}
		}
	}
	b.faces = append(b.faces, entry)
	id := fontset.FontID(len(b.faces) - 1)
	tracer().Debugf("loaded face %v (%s, weight %d) as font #%d",
		entry.families, entry.style, entry.weight, id)
	return id, nil
}

// LoadFonts registers several fonts, stopping at the first failure.
func (b *Backend) LoadFonts(data ...[]byte) error {
	for _, d := range data {
		if _, err := b.LoadFont(d); err != nil {
			return err
		}
	}
	return nil
}

// NewSet builds the font set over this backend. The default fonts list the
// faces in load order, followed by the faces backing the generic families.
func (b *Backend) NewSet() *fontset.Set {
	var defaults []fontset.FontID
	seen := make(map[fontset.FontID]bool)
	add := func(id fontset.FontID) {
		if !seen[id] {
			seen[id] = true
			defaults = append(defaults, id)
		}
	}
	for id := range b.faces {
		add(fontset.FontID(id))
	}
	for _, g := range []attr.Generic{attr.GenericSansSerif, attr.GenericSerif, attr.GenericMonospace} {
		for id, e := range b.faces {
			if genericOf(e) == g {
				add(fontset.FontID(id))
				break
			}
		}
	}
	return &fontset.Set{DB: b, Defaults: defaults}
}

// FamilyNames is part of the fontset.Database contract.
func (b *Backend) FamilyNames(id fontset.FontID) []string {
	if int(id) < 0 || int(id) >= len(b.faces) {
		return nil
	}
	return b.faces[id].families
}

// HasMatch is part of the fontset.Database contract. A bundle matches when
// a face carries the requested family with the requested style; weights are
// matched by nearest distance at shaping time and never fail here.
func (b *Backend) HasMatch(bundle attr.Bundle) bool {
	_, ok := b.match(bundle)
	return ok
}

// match finds the best face for a bundle: family and style must agree, the
// nearest weight wins.
func (b *Backend) match(bundle attr.Bundle) (fontset.FontID, bool) {
	best := -1
	bestDist := -1
	for id, e := range b.faces {
		if !familyMatches(e, bundle.Family) || e.style != bundle.Style {
			continue
		}
		dist := weightDistance(e.weight, bundle.Weight)
		if best < 0 || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return fontset.FontID(best), true
}

// pickFace selects the face to shape a span with. Unlike match, it never
// fails: shaping proceeds with a style-disregarding or arbitrary face
// rather than no face, leaving hole repair to the layout pass.
func (b *Backend) pickFace(bundle attr.Bundle) *font.Face {
	if id, ok := b.match(bundle); ok {
		return b.faces[id].face
	}
	for id, e := range b.faces {
		if familyMatches(e, bundle.Family) {
			return b.faces[id].face
		}
	}
	if len(b.faces) == 0 {
		return nil
	}
	return b.faces[0].face
}

func familyMatches(e faceEntry, f attr.Family) bool {
	if f.Generic != attr.GenericNone {
		return genericOf(e) == f.Generic
	}
	for _, name := range e.families {
		if strings.EqualFold(name, f.Name) {
			return true
		}
	}
	return false
}

// genericOf classifies a face by its primary family name.
func genericOf(e faceEntry) attr.Generic {
	if len(e.families) == 0 {
		return attr.GenericSansSerif
	}
	name := strings.ToLower(e.families[0])
	switch {
	case strings.Contains(name, "mono"):
		return attr.GenericMonospace
	case strings.Contains(name, "sans"):
		return attr.GenericSansSerif
	case strings.Contains(name, "serif"):
		return attr.GenericSerif
	}
	return attr.GenericSansSerif
}

// classifySubfamily infers style and weight from a subfamily name like
// "Bold Italic" or "DemiLight".
func classifySubfamily(sub string) (attr.Style, attr.Weight) {
	s := strings.ToLower(sub)
	style := attr.StyleRegular
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		style = attr.StyleItalic
	}
	weight := attr.WeightNormal
	switch {
	case strings.Contains(s, "thin"):
		weight = attr.WeightThin
	case strings.Contains(s, "semibold"), strings.Contains(s, "demi"):
		weight = attr.WeightSemiBold
	case strings.Contains(s, "black"), strings.Contains(s, "heavy"):
		weight = attr.WeightBlack
	case strings.Contains(s, "light"):
		weight = attr.WeightLight
	case strings.Contains(s, "medium"):
		weight = attr.WeightMedium
	case strings.Contains(s, "bold"):
		weight = attr.WeightBold
	}
	return style, weight
}

func weightDistance(a, b attr.Weight) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func appendFamily(families []string, name string) []string {
	for _, f := range families {
		if strings.EqualFold(f, name) {
			return families
		}
	}
	return append(families, name)
}
