package domain

import (
	"fmt"
	"time"
)

// Page represents one page of text extracted from a PDF document.
// Pages are the input to chunking; they carry no persistent identity
// of their own.
type Page struct {
	// Source is the path of the PDF file the page came from.
	Source string

	// Number is the 1-based page number within the document.
	Number int

	// Text is the extracted page text.
	Text string
}

// Document describes a source PDF discovered in the input folder.
// Documents are immutable once read; the vector store tracks their
// content implicitly through persisted chunks.
type Document struct {
	// Path is the location of the PDF file.
	Path string

	// Title is the human-readable title, when one could be extracted.
	Title string

	// PageCount is the number of pages in the document.
	PageCount int
}

// Chunk represents a contiguous span of extracted text from one page
// of one document. Chunks are the unit of embedding and retrieval.
type Chunk struct {
	// ID is the deterministic identifier "source:page:index".
	// Re-ingesting the same document produces the same IDs, so
	// upserts overwrite rather than duplicate.
	ID string

	// Source is the path of the originating PDF file.
	Source string

	// Page is the 1-based page number the chunk was cut from.
	Page int

	// Position is the ordinal chunk index within the page.
	Position int

	// Content is the chunk text.
	Content string

	// Overlap is the number of characters shared with the previous
	// chunk on the same page.
	Overlap int

	// Embedding is the vector representation, set during ingestion.
	Embedding []float32
}

// ChunkID builds the deterministic chunk identifier for a source path,
// page number and chunk position.
func ChunkID(source string, page, position int) string {
	return fmt.Sprintf("%s:%d:%d", source, page, position)
}

// VectorRecord is the persisted unit in the vector store: a chunk's
// text and embedding together with its source metadata.
type VectorRecord struct {
	// ID is the deterministic chunk identifier.
	ID string

	// Source is the path of the originating PDF file.
	Source string

	// Page is the 1-based page number.
	Page int

	// Position is the chunk index within the page.
	Position int

	// Content is the chunk text.
	Content string

	// Embedding is the stored vector.
	Embedding []float32

	// CreatedAt is when the record was first persisted.
	CreatedAt time.Time
}

// RecordFromChunk converts an embedded chunk into its persisted form.
func RecordFromChunk(c Chunk) VectorRecord {
	return VectorRecord{
		ID:        c.ID,
		Source:    c.Source,
		Page:      c.Page,
		Position:  c.Position,
		Content:   c.Content,
		Embedding: c.Embedding,
	}
}
