// Package mcp provides an MCP (Model Context Protocol) server adapter for ctxprompts.
// It lets AI assistants look up prompts from the local dataset.
package mcp

import "errors"

var (
	// ErrMissingLookupService is returned when the lookup service is not provided.
	ErrMissingLookupService = errors.New("mcp: lookup service is required")

	// ErrMissingDatasetPath is returned when no dataset path is configured.
	ErrMissingDatasetPath = errors.New("mcp: dataset path is required")

	// ErrNoMatch is returned by the contextual_prompt prompt when nothing matches.
	ErrNoMatch = errors.New("mcp: no prompt matches the query")
)
