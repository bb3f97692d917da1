package segmenter

import "strings"

// WhitespaceSegmenter splits text on Unicode whitespace only, keeping
// punctuation attached to words. Useful where the downstream
// normalizer is trusted to strip punctuation, and as the simplest
// reference implementation of the Segmenter contract. It never fails.
type WhitespaceSegmenter struct{}

func NewWhitespaceSegmenter() *WhitespaceSegmenter {
	return &WhitespaceSegmenter{}
}

func (*WhitespaceSegmenter) Segment(text string) ([]string, error) {
	return strings.Fields(text), nil
}
