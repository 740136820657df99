package mcp

import (
	"context"

	"github.com/sp80808/contextual-prompts/internal/adapters/driven/storage/memory"
	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/services"
)

const testDataset = "prompts.csv"

var testRecords = []domain.PromptRecord{
	{Act: "Linux Terminal", Prompt: "I want you to act as a linux terminal"},
	{Act: "Poet", Prompt: "Act like a poet and write about terminals"},
	{Act: "Chef", Prompt: "Suggest recipes"},
}

// newTestServer builds a server over an in-memory dataset.
func newTestServer() *Server {
	loader := memory.NewDatasetLoader()
	loader.Put(testDataset, testRecords)

	server, err := NewServer(&Ports{
		Lookup:      services.NewLookupService(loader),
		DatasetPath: testDataset,
	})
	if err != nil {
		panic(err)
	}
	return server
}

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	results []domain.PromptRecord
	err     error
	query   string
	opts    domain.LookupOptions
}

func (m *mockLookupService) Lookup(
	_ context.Context,
	query string,
	opts domain.LookupOptions,
) ([]domain.PromptRecord, error) {
	m.query = query
	m.opts = opts
	return m.results, m.err
}

func (m *mockLookupService) List(_ context.Context, _ string) ([]domain.PromptRecord, error) {
	return m.results, m.err
}
