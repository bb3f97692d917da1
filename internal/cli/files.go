package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sift/internal/adapter/fs"
	"sift/internal/usecase"
)

var filesJSON bool

var filesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "Tokenize every matching file under a directory",
	Long: `Walk a directory tree, tokenize each file matching the configured
include/exclude patterns, and report per-file tokens plus the combined
vocabulary.

Examples:
  sift files .                # Tokenize current directory
  sift files ./docs --json    # Machine-readable report`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().BoolVar(&filesJSON, "json", false, "print the full report as JSON")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	path := rootDir
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	tok, err := newTokenizer(cfg)
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Files.Includes, cfg.Files.Excludes)
	progress := cfg.Output.Progress && !filesJSON
	batch := usecase.NewBatch(walker, walker, tok, progress)

	report, err := batch.Run(path)
	if err != nil {
		return err
	}

	if filesJSON || cfg.Output.Format == "json" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Tokenized %d files (%d failed)\n", report.Stats.TotalFiles, report.Stats.FilesFailed)
	fmt.Printf("Tokens: %d total, %d unique\n", report.Stats.TotalTokens, report.Stats.UniqueCount)
	for _, e := range report.Errors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", e)
	}
	for _, t := range report.Vocabulary {
		fmt.Println(t)
	}
	return nil
}
