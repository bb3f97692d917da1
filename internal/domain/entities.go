package domain

// FileTokens holds the tokens extracted from a single file.
type FileTokens struct {
	Path   string   `json:"path"`
	Tokens []string `json:"tokens"`
}

// Report is the result of tokenizing a directory tree.
type Report struct {
	Root       string       `json:"root"`
	Files      []FileTokens `json:"files"`
	Vocabulary []string     `json:"vocabulary"`
	Stats      Stats        `json:"stats"`
	Errors     []string     `json:"errors,omitempty"`
}

type Stats struct {
	TotalFiles  int `json:"total_files"`
	FilesFailed int `json:"files_failed"`
	TotalTokens int `json:"total_tokens"`
	UniqueCount int `json:"unique_count"`
}
