package attr

// Metadata packs the per-span decoration state into a single word, suitable
// for piggy-backing on a shaper's opaque glyph metadata field:
//
//	bits 0–9   font weight (0–1023)
//	bit  10    underline
//	bit  11    strikethrough
//
// The zero value carries weight 0; use NewMetadata for a word with the
// normal weight pre-set.
type Metadata uint32

const (
	weightBits       = 10
	weightMask       = 1<<weightBits - 1
	underlineBit     = 1 << weightBits
	strikethroughBit = 1 << (weightBits + 1)
)

// NewMetadata returns a metadata word with weight WeightNormal and no
// decoration bits set.
func NewMetadata() Metadata {
	return Metadata(WeightNormal)
}

// MetadataFromRaw reinterprets a raw word as metadata.
func MetadataFromRaw(raw uint32) Metadata {
	return Metadata(raw)
}

// Raw returns the packed word.
func (m Metadata) Raw() uint32 {
	return uint32(m)
}

// Weight extracts the font weight from the low bits.
func (m Metadata) Weight() Weight {
	return Weight(m & weightMask)
}

// Underline reports whether the underline bit is set.
func (m Metadata) Underline() bool {
	return m&underlineBit != 0
}

// Strikethrough reports whether the strikethrough bit is set.
func (m Metadata) Strikethrough() bool {
	return m&strikethroughBit != 0
}

// SetWeight replaces the weight bits. Weights above 1023 do not fit into the
// word; they are truncated to the mask, which is a caller contract violation
// and traced as such.
func (m *Metadata) SetWeight(w Weight) {
	if w > weightMask {
		tracer().Errorf("font weight %d exceeds the metadata weight range, truncating", w)
		w = weightMask
	}
	*m = *m&^weightMask | Metadata(w)
}

// SetUnderline sets or clears the underline bit.
func (m *Metadata) SetUnderline(on bool) {
	if on {
		*m |= underlineBit
	} else {
		*m &^= underlineBit
	}
}

// SetStrikethrough sets or clears the strikethrough bit.
func (m *Metadata) SetStrikethrough(on bool) {
	if on {
		*m |= strikethroughBit
	} else {
		*m &^= strikethroughBit
	}
}
