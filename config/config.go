package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Segmenter modes selectable in configuration.
const (
	SegmenterUnicode    = "unicode"
	SegmenterWhitespace = "whitespace"
	SegmenterScript     = "script"
)

// Config holds all configuration for the sift CLI. It only wires the
// command-line surface; the tokenization core itself takes plain
// in-memory sets and never reads files.
type Config struct {
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Filter    FilterConfig    `yaml:"filter"`
	Files     FilesConfig     `yaml:"files"`
	Output    OutputConfig    `yaml:"output"`
}

// SegmenterConfig selects the word-boundary splitter.
type SegmenterConfig struct {
	Mode string `yaml:"mode"` // "unicode", "whitespace" or "script"
}

// FilterConfig tunes normalization filtering.
type FilterConfig struct {
	MinRunes         int      `yaml:"min_runes"`
	UseDefaults      bool     `yaml:"use_defaults"`       // include the built-in stopword/ignore sets
	ExtraStopwords   []string `yaml:"extra_stopwords"`    // matched against lowercased candidates
	ExtraIgnoreChars string   `yaml:"extra_ignore_chars"` // each rune is stripped from candidates
}

// FilesConfig holds include/exclude patterns for the files command.
type FilesConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	Format   string `yaml:"format"` // "text" or "json"
	Progress bool   `yaml:"progress"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Segmenter: SegmenterConfig{
			Mode: SegmenterUnicode,
		},
		Filter: FilterConfig{
			MinRunes:    2,
			UseDefaults: true,
		},
		Files: FilesConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.rst", "**/*.html"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**"},
		},
		Output: OutputConfig{
			Format:   "text",
			Progress: true,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// sift.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "sift.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
