package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoadFailed indicates a document could not be read or parsed.
	// Per-file load failures during ingestion are logged and skipped;
	// a missing input folder is fatal for the run.
	ErrLoadFailed = errors.New("document load failed")

	// ErrEmbeddingFailed indicates the embedding service is
	// unreachable or returned a malformed response.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrStoreFailed indicates the vector store is unavailable or an
	// operation against it failed. The current batch is abandoned;
	// committed batches remain persisted.
	ErrStoreFailed = errors.New("vector store failed")

	// ErrInferenceFailed indicates the generation service failed or
	// timed out. Surfaced to the user; never retried automatically.
	ErrInferenceFailed = errors.New("inference failed")

	// ErrInvalidConfig indicates malformed settings. Fatal at startup.
	ErrInvalidConfig = errors.New("invalid configuration")
)
