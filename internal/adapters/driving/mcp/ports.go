package mcp

import (
	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Statute provides statute search and content.
	Statute driving.StatuteService

	// Precedent provides precedent search and resolution.
	Precedent driving.PrecedentService

	// Citation parses reference text. Optional; parse_citations is not
	// registered without it.
	Citation driving.CitationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Statute == nil {
		return ErrMissingStatuteService
	}
	if p.Precedent == nil {
		return ErrMissingPrecedentService
	}
	return nil
}
