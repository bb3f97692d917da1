package usecase

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"sift/internal/domain"
	"sift/internal/port"
)

// Batch tokenizes every matching file under a directory tree and
// aggregates a corpus-wide vocabulary in first-occurrence order.
type Batch struct {
	walker    port.FileWalker
	reader    port.FileReader
	tokenizer port.Tokenizer
	progress  bool
}

// NewBatch creates a batch tokenization use case. When progress is
// true, a progress bar is rendered to stderr while files are
// processed.
func NewBatch(walker port.FileWalker, reader port.FileReader, tokenizer port.Tokenizer, progress bool) *Batch {
	return &Batch{
		walker:    walker,
		reader:    reader,
		tokenizer: tokenizer,
		progress:  progress,
	}
}

// Run walks root, tokenizes each selected file, and returns per-file
// token lists plus the deduplicated vocabulary across all files.
// Unreadable or unsegmentable files are recorded and skipped; they do
// not abort the run.
func (b *Batch) Run(root string) (*domain.Report, error) {
	files, err := b.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	report := &domain.Report{
		Root:  root,
		Files: make([]domain.FileTokens, 0, len(files)),
	}

	var bar *progressbar.ProgressBar
	if b.progress {
		bar = progressbar.Default(int64(len(files)), "tokenizing")
	}

	seen := make(map[string]struct{})
	for _, f := range files {
		if bar != nil {
			_ = bar.Add(1)
		}

		content, err := b.reader.ReadFile(f.Path)
		if err != nil {
			report.Stats.FilesFailed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", f.Path, err))
			continue
		}

		tokens, err := b.tokenizer.Tokenize(content)
		if err != nil {
			report.Stats.FilesFailed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", f.Path, err))
			continue
		}

		report.Files = append(report.Files, domain.FileTokens{Path: f.Path, Tokens: tokens})
		report.Stats.TotalFiles++
		report.Stats.TotalTokens += len(tokens)

		for _, tok := range tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			report.Vocabulary = append(report.Vocabulary, tok)
		}
	}

	report.Stats.UniqueCount = len(report.Vocabulary)
	return report, nil
}
