package attr

import "testing"

func TestMetadataRoundTrip(t *testing.T) {
	for w := 0; w <= weightMask; w += 7 {
		for _, ul := range []bool{false, true} {
			for _, st := range []bool{false, true} {
				var m Metadata
				m.SetWeight(Weight(w))
				m.SetUnderline(ul)
				m.SetStrikethrough(st)
				if got := m.Weight(); got != Weight(w) {
					t.Fatalf("weight round-trip: got %d, want %d", got, w)
				}
				if m.Underline() != ul {
					t.Fatalf("underline round-trip failed for weight %d", w)
				}
				if m.Strikethrough() != st {
					t.Fatalf("strikethrough round-trip failed for weight %d", w)
				}
				if back := MetadataFromRaw(m.Raw()); back != m {
					t.Fatalf("raw round-trip: got %v, want %v", back, m)
				}
			}
		}
	}
}

func TestMetadataWeightDoesNotClobberFlags(t *testing.T) {
	m := NewMetadata()
	m.SetUnderline(true)
	m.SetStrikethrough(true)
	m.SetWeight(WeightBold)
	if !m.Underline() || !m.Strikethrough() {
		t.Errorf("setting the weight must preserve decoration bits, got %v", m)
	}
	if m.Weight() != WeightBold {
		t.Errorf("weight = %d, want %d", m.Weight(), WeightBold)
	}
	m.SetUnderline(false)
	if m.Underline() {
		t.Errorf("underline bit not cleared")
	}
	if m.Weight() != WeightBold || !m.Strikethrough() {
		t.Errorf("clearing underline must not touch other fields, got %v", m)
	}
}

func TestMetadataWeightTruncation(t *testing.T) {
	var m Metadata
	m.SetUnderline(true)
	m.SetWeight(2000)
	if m.Weight() != weightMask {
		t.Errorf("out-of-range weight must truncate to %d, got %d", weightMask, m.Weight())
	}
	if !m.Underline() {
		t.Errorf("truncation must not clear decoration bits")
	}
}

func TestNewMetadataDefaults(t *testing.T) {
	m := NewMetadata()
	if m.Weight() != WeightNormal {
		t.Errorf("fresh metadata weight = %d, want %d", m.Weight(), WeightNormal)
	}
	if m.Underline() || m.Strikethrough() {
		t.Errorf("fresh metadata must carry no decoration bits")
	}
}
