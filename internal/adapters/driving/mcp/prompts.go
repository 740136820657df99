package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sp80808/contextual-prompts/internal/core/domain"
)

// registerPrompts registers the prompt templates with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "contextual_prompt",
		Description: "The best matching prompt from the dataset for a task or context",
		Arguments: []*mcp.PromptArgument{{
			Name:        "query",
			Description: "the task or context to find a prompt for",
			Required:    true,
		}},
	}, s.handleContextualPrompt)
}

// handleContextualPrompt returns the top-ranked prompt body as a user message.
func (s *Server) handleContextualPrompt(
	ctx context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	query := req.Params.Arguments["query"]

	results, err := s.ports.Lookup.Lookup(ctx, query, domain.LookupOptions{
		DatasetPath: s.ports.DatasetPath,
		TopN:        1,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}

	return &mcp.GetPromptResult{
		Description: results[0].Act,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: results[0].Prompt},
		}},
	}, nil
}
