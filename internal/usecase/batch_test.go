package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sift/internal/adapter/analyzer"
	"sift/internal/adapter/fs"
	"sift/internal/adapter/segmenter"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBatch_Run(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "The quick brown fox.")
	writeFile(t, filepath.Join(tmpDir, "b.txt"), "Fox jumps, fox sleeps.")

	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	tok := analyzer.NewPipeline(segmenter.NewRuneSegmenter())
	batch := NewBatch(walker, walker, tok, false)

	report, err := batch.Run(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Stats.TotalFiles != 2 {
		t.Errorf("expected 2 files, got %d", report.Stats.TotalFiles)
	}
	if report.Stats.FilesFailed != 0 {
		t.Errorf("expected 0 failures, got %d", report.Stats.FilesFailed)
	}

	// filepath.Walk visits lexicographically, so a.txt comes first and
	// the vocabulary follows first-occurrence order across files.
	want := []string{"quick", "brown", "fox", "jumps", "sleeps"}
	if !reflect.DeepEqual(report.Vocabulary, want) {
		t.Errorf("vocabulary = %v, want %v", report.Vocabulary, want)
	}
	if report.Stats.UniqueCount != len(want) {
		t.Errorf("expected unique count %d, got %d", len(want), report.Stats.UniqueCount)
	}

	seen := make(map[string]struct{})
	for _, tok := range report.Vocabulary {
		if _, dup := seen[tok]; dup {
			t.Errorf("duplicate token in vocabulary: %q", tok)
		}
		seen[tok] = struct{}{}
	}
}

type failingTokenizer struct{}

func (*failingTokenizer) Tokenize(text string) ([]string, error) {
	return nil, errors.New("segmentation failed")
}

func TestBatch_RecordsFailures(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "content")

	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	batch := NewBatch(walker, walker, &failingTokenizer{}, false)

	report, err := batch.Run(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Stats.FilesFailed != 1 {
		t.Errorf("expected 1 failure, got %d", report.Stats.FilesFailed)
	}
	if len(report.Errors) != 1 {
		t.Errorf("expected 1 recorded error, got %v", report.Errors)
	}
	if report.Stats.TotalFiles != 0 {
		t.Errorf("failed files must not count as tokenized, got %d", report.Stats.TotalFiles)
	}
}

func TestBatch_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	walker := fs.NewWalker(nil, nil)
	tok := analyzer.NewPipeline(segmenter.NewRuneSegmenter())
	batch := NewBatch(walker, walker, tok, false)

	report, err := batch.Run(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Stats.TotalFiles != 0 || len(report.Vocabulary) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
