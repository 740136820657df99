package driving

import (
	"context"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// LookupService provides prompt lookup to external actors.
type LookupService interface {
	// Lookup returns the records most relevant to query, best first.
	// A missing dataset yields an empty result rather than an error.
	Lookup(ctx context.Context, query string, opts domain.LookupOptions) ([]domain.PromptRecord, error)

	// List returns every record in the dataset at path, in row order.
	List(ctx context.Context, path string) ([]domain.PromptRecord, error)
}
