package mcp

import (
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
)

// Ports aggregates the core interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer answers questions grounded on the document library.
	Answer driving.Answerer

	// Ingest runs the ingestion pipeline.
	Ingest driving.Ingestor

	// Store gives read access to the vector store for status reporting.
	Store driven.VectorStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	// Ingest and Store are optional: without them the server is
	// query-only.
	return nil
}
