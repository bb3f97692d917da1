package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizer reduces a raw segment to a canonical lowercase,
// punctuation-free form.
type Normalizer struct {
	ignore map[rune]struct{}
}

// NewNormalizer creates a Normalizer. A nil ignore set selects
// DefaultIgnoreChars. The set must not be mutated after the call.
func NewNormalizer(ignore map[rune]struct{}) *Normalizer {
	if ignore == nil {
		ignore = DefaultIgnoreChars()
	}
	return &Normalizer{ignore: ignore}
}

// Normalize trims the segment, applies NFKC so full-width and composed
// forms collapse to one representation, lowercases, then strips
// punctuation in two passes: every rune in the Unicode punctuation
// category, then every rune in the ignore set. The ignore pass stays
// even where it overlaps the category pass; it also catches
// Symbol-category runes like backtick and pipe that unicode.IsPunct
// does not. The result may be the empty string; that is a valid value
// for the Filter to reject, never an error.
func (n *Normalizer) Normalize(segment string) string {
	s := strings.TrimSpace(segment)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
	return strings.Map(func(r rune) rune {
		if _, drop := n.ignore[r]; drop {
			return -1
		}
		return r
	}, s)
}
