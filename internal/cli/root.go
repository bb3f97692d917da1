package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sift/config"
	"sift/internal/adapter/analyzer"
	"sift/internal/adapter/segmenter"
	"sift/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Normalize free-form text into deduplicated tokens",
	Long: `sift reduces free-form, possibly multilingual text to a small set of
normalized, deduplicated tokens suitable for indexing or matching:
word-boundary splitting, lowercasing, punctuation stripping, stopword
filtering and order-preserving deduplication.

Example usage:
  sift tokenize "The quick brown fox."   # Tokenize a string
  echo "some text" | sift tokenize       # Tokenize stdin
  sift files ./docs                      # Tokenize a directory tree`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sift.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

// newSegmenter builds the configured word-boundary splitter.
func newSegmenter(cfg *config.Config) (port.Segmenter, error) {
	switch cfg.Segmenter.Mode {
	case "", config.SegmenterUnicode:
		return segmenter.NewRuneSegmenter(), nil
	case config.SegmenterWhitespace:
		return segmenter.NewWhitespaceSegmenter(), nil
	case config.SegmenterScript:
		seg, err := segmenter.NewScriptSegmenter()
		if err != nil {
			return nil, fmt.Errorf("failed to load script segmenter: %w", err)
		}
		return seg, nil
	default:
		return nil, fmt.Errorf("unknown segmenter mode: %q", cfg.Segmenter.Mode)
	}
}

// effectiveSets resolves the stopword and ignore-character sets from
// configuration.
func effectiveSets(cfg *config.Config) (map[string]struct{}, map[rune]struct{}) {
	var stopwords map[string]struct{}
	var ignore map[rune]struct{}

	if cfg.Filter.UseDefaults {
		stopwords = analyzer.DefaultStopwords()
		ignore = analyzer.DefaultIgnoreChars()
	} else {
		// The empty string stays a stopword even with defaults off.
		stopwords = map[string]struct{}{"": {}}
		ignore = make(map[rune]struct{})
	}

	for _, w := range cfg.Filter.ExtraStopwords {
		stopwords[w] = struct{}{}
	}
	for _, r := range cfg.Filter.ExtraIgnoreChars {
		ignore[r] = struct{}{}
	}

	return stopwords, ignore
}

// newTokenizer wires the configured pipeline.
func newTokenizer(cfg *config.Config) (*analyzer.Pipeline, error) {
	seg, err := newSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	stopwords, ignore := effectiveSets(cfg)
	return analyzer.NewPipelineWithSets(seg, stopwords, ignore, cfg.Filter.MinRunes), nil
}
