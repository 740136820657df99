package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ctxprompts resources.
	uriScheme = "ctxprompts://"

	promptsURI = uriScheme + "prompts"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         promptsURI,
		Name:        "prompts",
		Description: "Every act/prompt pair in the dataset",
		MIMEType:    "application/json",
	}, s.handlePromptsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: promptsURI + "/{act}",
		Name:        "prompt-text",
		Description: "Prompt text for an act (case-insensitive, URL-escaped)",
		MIMEType:    "text/plain",
	}, s.handlePromptTextResource)
}

// handlePromptsResource returns the whole dataset as JSON.
func (s *Server) handlePromptsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Lookup.List(ctx, s.ports.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling prompts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePromptTextResource returns the prompt body of the first record whose
// act equals the one named in the URI.
func (s *Server) handlePromptTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	act := extractAct(req.Params.URI)
	if act == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Lookup.List(ctx, s.ports.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}

	for i := range records {
		if strings.EqualFold(records[i].Act, act) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     records[i].Prompt,
				}},
			}, nil
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractAct extracts the act from a URI like ctxprompts://prompts/{act}.
func extractAct(uri string) string {
	const prefix = promptsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	act, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return act
}
