// Package mcp provides an MCP (Model Context Protocol) server adapter
// for paperchat. It lets AI assistants like Claude query the local PDF
// library and trigger ingestion.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
