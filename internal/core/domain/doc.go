// Package domain defines the core business entities for Paperchat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: A single page of extracted PDF text
//   - Chunk: A bounded span of page text, the unit of embedding and retrieval
//   - VectorRecord: The persisted unit in the vector store
//   - Answer: Generated text plus source citations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
