package analyzer

import "unicode/utf8"

// Filter rejects normalized candidates that are too short or belong to
// the stopword set.
type Filter struct {
	stopwords map[string]struct{}
	minRunes  int
}

// NewFilter creates a Filter. A nil stopword set selects
// DefaultStopwords; minRunes below 2 is raised to 2 so single-rune
// candidates can never pass. The set must not be mutated after the
// call.
func NewFilter(stopwords map[string]struct{}, minRunes int) *Filter {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	if minRunes < 2 {
		minRunes = 2
	}
	return &Filter{
		stopwords: stopwords,
		minRunes:  minRunes,
	}
}

// Accept reports whether candidate survives filtering. Length is
// counted in runes, not bytes, so multi-byte scripts are measured the
// same way as ASCII. A rejected candidate means "no token produced",
// not an error.
func (f *Filter) Accept(candidate string) bool {
	if utf8.RuneCountInString(candidate) < f.minRunes {
		return false
	}
	_, stop := f.stopwords[candidate]
	return !stop
}
