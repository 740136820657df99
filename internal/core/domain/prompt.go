package domain

// DefaultTopN is the number of results returned when the caller does not
// choose a limit.
const DefaultTopN = 5

// PromptRecord is one row of the prompt dataset.
// Records are immutable once loaded.
type PromptRecord struct {
	// Act is the short label, e.g. "Linux Terminal".
	Act string `json:"act"`

	// Prompt is the full prompt text.
	Prompt string `json:"prompt"`
}

// LookupOptions configures a relevance lookup.
type LookupOptions struct {
	// DatasetPath is the resolved location of the dataset file.
	DatasetPath string

	// TopN is the maximum number of results. Zero returns nothing.
	TopN int
}
