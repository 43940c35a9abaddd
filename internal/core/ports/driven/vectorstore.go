package driven

import (
	"context"

	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// VectorStore persists vector records and performs similarity search.
//
// The store is the only persistent state in the system. Its collection
// is mutated exclusively through Upsert and Reset.
type VectorStore interface {
	// Upsert idempotently inserts or overwrites records keyed by
	// their deterministic IDs. The call is transactional: either the
	// whole batch commits or none of it does.
	Upsert(ctx context.Context, records []domain.VectorRecord) error

	// Query returns the topK records most similar to the embedding,
	// descending cosine similarity, ties broken by insertion order.
	// An empty collection yields an empty result, not an error.
	Query(ctx context.Context, embedding []float32, topK int) (domain.QueryResult, error)

	// ListIDs returns the IDs of all persisted records.
	ListIDs(ctx context.Context) (map[string]struct{}, error)

	// Count returns the number of persisted records.
	Count(ctx context.Context) (int, error)

	// Reset irrecoverably deletes all persisted records. Destructive;
	// only ever called on explicit user intent, never implicitly.
	Reset(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
