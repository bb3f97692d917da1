package analyzer

import (
	"fmt"

	"sift/internal/port"
)

// Pipeline wires a Segmenter, Normalizer and Filter into a single
// tokenize operation with order-preserving deduplication. All
// configuration is fixed at construction, so a single Pipeline is safe
// to use from multiple goroutines without locking.
type Pipeline struct {
	segmenter  port.Segmenter
	normalizer *Normalizer
	filter     *Filter
}

// NewPipeline creates a Pipeline with the built-in multilingual
// stopword and ignore-character sets.
func NewPipeline(segmenter port.Segmenter) *Pipeline {
	return NewPipelineWithSets(segmenter, nil, nil, 0)
}

// NewPipelineWithSets creates a Pipeline with caller-provided sets,
// for localization or testing with minimal stoplists. Nil sets select
// the defaults. The sets must not be mutated after the call.
func NewPipelineWithSets(segmenter port.Segmenter, stopwords map[string]struct{}, ignore map[rune]struct{}, minRunes int) *Pipeline {
	return &Pipeline{
		segmenter:  segmenter,
		normalizer: NewNormalizer(ignore),
		filter:     NewFilter(stopwords, minRunes),
	}
}

// Tokenize reduces text to an ordered sequence of unique, normalized
// tokens. Empty text yields an empty result without consulting the
// segmenter. Segments are processed strictly in segmentation order;
// the only reordering effect is the removal of later duplicates. A
// segmenter failure is propagated rather than papered over with a
// partial token list.
func (p *Pipeline) Tokenize(text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}
	segments, err := p.segmenter.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segmentation failed: %w", err)
	}
	interim := make([]string, 0, len(segments))
	for _, segment := range segments {
		candidate := p.normalizer.Normalize(segment)
		if p.filter.Accept(candidate) {
			interim = append(interim, candidate)
		}
	}
	return Dedupe(interim), nil
}

// Dedupe collapses tokens to unique values, preserving the order of
// first occurrence. Equality is exact string equality; case and
// punctuation differences have already been collapsed upstream.
func Dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
