package segmenter

import (
	"strings"
	"unicode"
)

// RuneSegmenter splits text into runs of letters, digits and
// underscores. Punctuation and whitespace act as boundaries and are
// not emitted. It never fails.
type RuneSegmenter struct{}

func NewRuneSegmenter() *RuneSegmenter {
	return &RuneSegmenter{}
}

func (*RuneSegmenter) Segment(text string) ([]string, error) {
	var segments []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments, nil
}
