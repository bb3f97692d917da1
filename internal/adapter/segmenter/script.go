package segmenter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-ego/gse"
)

// ScriptSegmenter performs dictionary-based word segmentation for
// scripts without whitespace word delimiters (Japanese and Chinese),
// while still emitting alphanumeric runs for Latin text.
type ScriptSegmenter struct {
	seg gse.Segmenter
}

// NewScriptSegmenter loads the embedded Japanese and Chinese
// dictionaries. Loading happens once; the segmenter is read-only
// afterward.
func NewScriptSegmenter() (*ScriptSegmenter, error) {
	s := &ScriptSegmenter{}
	s.seg.AlphaNum = true

	if err := s.seg.LoadDictEmbed("ja"); err != nil {
		return nil, fmt.Errorf("load ja dictionary: %w", err)
	}
	if err := s.seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("load zh dictionary: %w", err)
	}

	return s, nil
}

// Segment splits text along dictionary word boundaries. Malformed
// encoding is the one input this segmenter refuses.
func (s *ScriptSegmenter) Segment(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, errors.New("text is not valid UTF-8")
	}
	return s.seg.Slice(text), nil
}
