package services

import (
	"os"

	"github.com/sp80808/contextual-prompts/internal/logger"
)

// DatasetFileName is the file name of the awesome-chatgpt-prompts dataset.
const DatasetFileName = "awesome-chatgpt-prompts.csv"

// DefaultDatasetPaths lists where the dataset is looked for when nothing is
// configured: the working directory, then data/, then docs/cline_docs/.
func DefaultDatasetPaths() []string {
	return []string{
		DatasetFileName,
		"data/" + DatasetFileName,
		"docs/cline_docs/" + DatasetFileName,
	}
}

// ResolveDatasetPath returns the first candidate that exists and is a
// regular file. The boolean is false when no candidate matches.
func ResolveDatasetPath(candidates []string) (string, bool) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			logger.Debug("Dataset candidate %s: %v", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			logger.Debug("Dataset candidate %s is not a regular file", path)
			continue
		}
		logger.Debug("Using dataset %s", path)
		return path, true
	}
	return "", false
}
