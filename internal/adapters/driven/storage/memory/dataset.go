package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driven"
)

// Ensure DatasetLoader implements the interface.
var _ driven.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader serves datasets registered by path, for testing.
// Unknown paths fail with domain.ErrDatasetUnavailable.
type DatasetLoader struct {
	mu       sync.RWMutex
	datasets map[string][]domain.PromptRecord
	loads    int
}

// NewDatasetLoader creates an empty in-memory dataset loader.
func NewDatasetLoader() *DatasetLoader {
	return &DatasetLoader{
		datasets: make(map[string][]domain.PromptRecord),
	}
}

// Put registers records under path, replacing any previous dataset.
func (l *DatasetLoader) Put(path string, records []domain.PromptRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.datasets[path] = append([]domain.PromptRecord(nil), records...)
}

// Load returns a copy of the records registered under path.
func (l *DatasetLoader) Load(_ context.Context, path string) ([]domain.PromptRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads++
	records, ok := l.datasets[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, domain.ErrDatasetUnavailable)
	}
	return append([]domain.PromptRecord{}, records...), nil
}

// Loads returns how many times Load has been called.
func (l *DatasetLoader) Loads() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loads
}
