package mcp

import (
	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driving"
)

// Ports aggregates what the MCP server needs from the core.
type Ports struct {
	// Lookup ranks prompts against a query.
	Lookup driving.LookupService

	// DatasetPath is the resolved dataset every request reads.
	DatasetPath string

	// DefaultTopN applies when a tool call omits top_n. Zero means domain.DefaultTopN.
	DefaultTopN int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.DatasetPath == "" {
		return ErrMissingDatasetPath
	}
	return nil
}

func (p *Ports) topN(requested int) int {
	if requested > 0 {
		return requested
	}
	if p.DefaultTopN > 0 {
		return p.DefaultTopN
	}
	return domain.DefaultTopN
}
