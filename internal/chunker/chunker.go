// Package chunker splits extracted page text into fixed-size
// overlapping chunks suitable for embedding and retrieval.
package chunker

import (
	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

// Chunker splits page text into fixed-size chunks. Sizes are measured
// in runes so multi-byte text never splits mid-character.
//
// Consecutive chunks from the same page overlap by exactly the
// configured overlap, and concatenating the chunks with the overlap
// trimmed reconstructs the page text.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Split cuts one page into chunks. An empty page yields no chunks; a
// page shorter than one chunk yields exactly one. Chunk IDs are
// deterministic ("source:page:index") so re-ingestion overwrites
// rather than duplicates.
func (c *Chunker) Split(page domain.Page) []domain.Chunk {
	if page.Text == "" {
		return nil
	}

	runes := []rune(page.Text)
	step := c.chunkSize - c.overlap

	chunks := make([]domain.Chunk, 0, len(runes)/step+1)
	for start := 0; ; start += step {
		end := start + c.chunkSize
		last := end >= len(runes)
		if last {
			end = len(runes)
		}

		overlap := c.overlap
		if start == 0 {
			overlap = 0
		}

		position := len(chunks)
		chunks = append(chunks, domain.Chunk{
			ID:       domain.ChunkID(page.Source, page.Number, position),
			Source:   page.Source,
			Page:     page.Number,
			Position: position,
			Content:  string(runes[start:end]),
			Overlap:  overlap,
		})

		if last {
			break
		}
	}

	return chunks
}

// SplitAll cuts a sequence of pages into chunks, preserving page order.
func (c *Chunker) SplitAll(pages []domain.Page) []domain.Chunk {
	var chunks []domain.Chunk
	for _, page := range pages {
		chunks = append(chunks, c.Split(page)...)
	}
	return chunks
}
