package driven

import (
	"context"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// DatasetLoader reads the prompt dataset from storage.
// Implementations return records in source row order.
type DatasetLoader interface {
	// Load reads every record at path.
	// Returns an error wrapping domain.ErrDatasetUnavailable when the file
	// cannot be opened, or domain.ErrMalformedDataset when it cannot be parsed.
	Load(ctx context.Context, path string) ([]domain.PromptRecord, error)
}
