package port

// Tokenizer reduces free-form text to an ordered sequence of unique,
// normalized tokens. A non-nil error means word segmentation failed;
// every other input, including empty text, yields a (possibly empty)
// token list.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}
