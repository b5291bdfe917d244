package mcp

import (
	"github.com/quill-labs/stacks-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search, suggestion and history capabilities.
	Search driving.SearchService

	// Index exposes index diagnostics.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Index is optional; the stats resource degrades without it
	return nil
}
