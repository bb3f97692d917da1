package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Print the effective stopword and ignore-character sets",
	Long: `Print the stopword and ignore-character sets the pipeline would use
with the current configuration, sorted for readability. The pipeline
itself never sorts; token order always follows the input.`,
	RunE: runStopwords,
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
}

func runStopwords(cmd *cobra.Command, args []string) error {
	stopwords, ignore := effectiveSets(cfg)

	words := make([]string, 0, len(stopwords))
	for w := range stopwords {
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	sort.Strings(words)

	chars := make([]string, 0, len(ignore))
	for r := range ignore {
		chars = append(chars, string(r))
	}
	sort.Strings(chars)

	fmt.Printf("Stopwords (%d):\n", len(words))
	for _, w := range words {
		fmt.Printf("  %s\n", w)
	}
	fmt.Printf("Ignore characters (%d):\n", len(chars))
	for _, c := range chars {
		fmt.Printf("  %s\n", c)
	}
	return nil
}
