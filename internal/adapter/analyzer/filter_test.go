package analyzer

import "testing"

func TestFilter_Accept(t *testing.T) {
	f := NewFilter(nil, 2)

	tests := []struct {
		candidate string
		want      bool
	}{
		{"", false},
		{"a", false},
		{"私", false}, // one rune, three bytes
		{"the", false},
		{"の", false},
		{"です", false},
		{"hello", true},
		{"学生", true},
		{"ab", true},
	}

	for _, tt := range tests {
		if got := f.Accept(tt.candidate); got != tt.want {
			t.Errorf("Accept(%q) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestFilter_MinRunes(t *testing.T) {
	f := NewFilter(map[string]struct{}{"": {}}, 3)

	if f.Accept("ab") {
		t.Error("expected 2-rune candidate rejected with minRunes=3")
	}
	if !f.Accept("abc") {
		t.Error("expected 3-rune candidate accepted with minRunes=3")
	}
}

func TestFilter_MinRunesFloor(t *testing.T) {
	// A floor of 2 holds even when callers ask for less.
	f := NewFilter(map[string]struct{}{}, 0)

	if f.Accept("a") {
		t.Error("expected single-rune candidate rejected regardless of minRunes")
	}
	if f.Accept("") {
		t.Error("expected empty candidate rejected regardless of minRunes")
	}
}

func TestDefaultStopwords_ContainsEmptyString(t *testing.T) {
	stops := DefaultStopwords()
	if _, ok := stops[""]; !ok {
		t.Error("default stopword set must contain the empty string")
	}
}

func TestDefaultIgnoreChars_CoverSymbolRunes(t *testing.T) {
	ignore := DefaultIgnoreChars()
	for _, r := range "`|~^<>=+$" {
		if _, ok := ignore[r]; !ok {
			t.Errorf("default ignore set missing %q", r)
		}
	}
}
