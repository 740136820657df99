package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// LookupInput is the input schema for the lookup_prompts tool.
type LookupInput struct {
	Query string `json:"query" jsonschema:"the task or context to find prompts for"`
	TopN  int    `json:"top_n,omitempty" jsonschema:"maximum number of prompts to return (default 5)"`
}

// LookupOutput is the output schema for the lookup_prompts tool.
type LookupOutput struct {
	Results []domain.PromptRecord `json:"results"`
	Count   int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_prompts",
		Description: "Find prompts whose act or text contains the query, best matches first",
	}, s.handleLookup)
}

// handleLookup handles the lookup_prompts tool invocation.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	opts := domain.LookupOptions{
		DatasetPath: s.ports.DatasetPath,
		TopN:        s.ports.topN(input.TopN),
	}

	results, err := s.ports.Lookup.Lookup(ctx, input.Query, opts)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	if results == nil {
		results = []domain.PromptRecord{}
	}

	return nil, LookupOutput{Results: results, Count: len(results)}, nil
}
