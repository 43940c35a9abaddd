package driving

import (
	"context"
	"time"
)

// Ingestor loads documents from the input folder into the vector store.
type Ingestor interface {
	// Ingest runs the ingestion pipeline: discover, load, chunk,
	// embed, upsert. Per-file and per-batch failures are recorded in
	// the report and skipped; the run fails only when the input
	// folder is unreadable or the store is unusable.
	Ingest(ctx context.Context, opts IngestOptions) (*IngestReport, error)

	// Reset deletes all persisted records. Destructive; callers must
	// obtain explicit user intent first.
	Reset(ctx context.Context) error
}

// IngestOptions configures an ingestion run.
type IngestOptions struct {
	// Paths restricts the run to specific PDF files. Empty means the
	// whole input folder.
	Paths []string
}

// IngestReport summarises an ingestion run.
type IngestReport struct {
	// RunID uniquely identifies the run in logs.
	RunID string `json:"run_id"`

	// Documents is the number of PDF files processed.
	Documents int `json:"documents"`

	// Pages is the number of pages extracted.
	Pages int `json:"pages"`

	// Chunks is the number of chunks produced.
	Chunks int `json:"chunks"`

	// Added is the number of new records written to the store.
	Added int `json:"added"`

	// Skipped is the number of chunks already present in the store.
	Skipped int `json:"skipped"`

	// Failures lists per-file and per-batch errors that were skipped.
	Failures []string `json:"failures,omitempty"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`
}
