package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for paperchat resources.
const uriScheme = "paperchat://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the vector store contents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Vector store status: number of ingested chunks",
		MIMEType:    "application/json",
	}, s.handleStatusResource)
}

// statusResource is the JSON shape of the status resource.
type statusResource struct {
	Chunks int `json:"chunks"`
}

// handleStatusResource returns the vector store status.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	status := statusResource{}

	if s.ports.Store != nil {
		count, err := s.ports.Store.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting records: %w", err)
		}
		status.Chunks = count
	}

	data, err := json.Marshal(status)
	if err != nil {
		return nil, fmt.Errorf("marshalling status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
