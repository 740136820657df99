package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driven"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driving"
	"github.com/sp80808/contextual-prompts/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// Score weights. A label match outranks a body-only match, and a match in
// both outranks either alone.
const (
	actWeight    = 2
	promptWeight = 1
)

// scoredRecord holds a record and its relevance while ranking.
type scoredRecord struct {
	record domain.PromptRecord
	score  int
}

// LookupService ranks dataset records against a query by keyword containment.
type LookupService struct {
	loader driven.DatasetLoader
}

// NewLookupService creates a lookup service reading through loader.
func NewLookupService(loader driven.DatasetLoader) *LookupService {
	return &LookupService{loader: loader}
}

// Lookup returns up to opts.TopN records relevant to query, best first.
//
// The dataset is loaded fresh on every call. When it cannot be opened the
// failure is reported on the error stream and an empty result is returned
// with a nil error. An empty query matches nothing.
func (s *LookupService) Lookup(
	ctx context.Context, query string, opts domain.LookupOptions,
) ([]domain.PromptRecord, error) {
	logger.Section("Lookup")
	logger.Debug("Query: %q, dataset: %s, top_n: %d", query, opts.DatasetPath, opts.TopN)

	if opts.TopN < 0 {
		return nil, fmt.Errorf("%w: top_n must be non-negative, got %d", domain.ErrInvalidArgument, opts.TopN)
	}

	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.PromptRecord{}, nil
	}

	records, err := s.loader.Load(ctx, opts.DatasetPath)
	if err != nil {
		if errors.Is(err, domain.ErrDatasetUnavailable) {
			logger.Error("dataset not found at %s. Download it from "+
				"https://huggingface.co/datasets/fka/awesome-chatgpt-prompts "+
				"and place it at that path (%v)", opts.DatasetPath, err)
			return []domain.PromptRecord{}, nil
		}
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	logger.Debug("Loaded %d records", len(records))

	return Rank(query, records, opts.TopN), nil
}

// List returns every record in the dataset at path.
func (s *LookupService) List(ctx context.Context, path string) ([]domain.PromptRecord, error) {
	records, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return records, nil
}

// Rank scores records against query, drops non-matches, orders by score
// descending (row order breaks ties) and keeps the first topN.
func Rank(query string, records []domain.PromptRecord, topN int) []domain.PromptRecord {
	if query == "" || topN <= 0 {
		return []domain.PromptRecord{}
	}

	fold := cases.Fold()
	needle := fold.String(query)

	scored := make([]scoredRecord, 0, len(records))
	for _, rec := range records {
		score := relevance(fold, needle, rec)
		if score > 0 {
			scored = append(scored, scoredRecord{record: rec, score: score})
		}
	}
	logger.Debug("Matched %d of %d records", len(scored), len(records))

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	results := make([]domain.PromptRecord, len(scored))
	for i := range scored {
		results[i] = scored[i].record
	}
	return results
}

// relevance scores rec for an already folded needle: 0, 1, 2 or 3.
func relevance(fold cases.Caser, needle string, rec domain.PromptRecord) int {
	score := 0
	if strings.Contains(fold.String(rec.Act), needle) {
		score += actWeight
	}
	if strings.Contains(fold.String(rec.Prompt), needle) {
		score += promptWeight
	}
	return score
}
