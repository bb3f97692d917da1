package port

// Segmenter splits raw text into an ordered sequence of substrings along
// word or script boundaries. Implementations must be deterministic and
// side-effect-free. Segments may be empty, whitespace-only, or
// punctuation-only; consumers must tolerate all of these.
type Segmenter interface {
	Segment(text string) ([]string, error)
}
