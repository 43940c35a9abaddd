package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the document library"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"number of document chunks to retrieve (default 5)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string           `json:"answer"`
	Citations []CitationOutput `json:"citations"`
	NoSources bool             `json:"no_sources,omitempty"`
}

// CitationOutput identifies a source page an answer was grounded on.
type CitationOutput struct {
	Source string `json:"source"`
	Page   int    `json:"page"`
}

// IngestInput is the input schema for the ingest tool.
type IngestInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"PDF files to ingest; empty means the configured input folder"`
}

// IngestOutput is the output schema for the ingest tool.
type IngestOutput struct {
	Documents int      `json:"documents"`
	Chunks    int      `json:"chunks"`
	Added     int      `json:"added"`
	Skipped   int      `json:"skipped"`
	Failures  []string `json:"failures,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question grounded on the ingested PDF documents, with citations",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest",
		Description: "Ingest PDF documents into the vector store",
	}, s.handleIngest)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	opts := driving.AskOptions{TopK: input.TopK}

	answer, err := s.ports.Answer.Ask(ctx, input.Question, opts)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:    answer.Text,
		Citations: make([]CitationOutput, len(answer.Citations)),
		NoSources: answer.NoSources,
	}
	for i, citation := range answer.Citations {
		output.Citations[i] = CitationOutput{
			Source: citation.Source,
			Page:   citation.Page,
		}
	}

	return nil, output, nil
}

// handleIngest handles the ingest tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	if s.ports.Ingest == nil {
		return nil, IngestOutput{}, errors.New("mcp: ingestion is not enabled on this server")
	}

	report, err := s.ports.Ingest.Ingest(ctx, driving.IngestOptions{Paths: input.Paths})
	if err != nil {
		return nil, IngestOutput{}, err
	}

	return nil, IngestOutput{
		Documents: report.Documents,
		Chunks:    report.Chunks,
		Added:     report.Added,
		Skipped:   report.Skipped,
		Failures:  report.Failures,
	}, nil
}
