package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// Ensure RetrieverService implements the interface.
var _ driving.Retriever = (*RetrieverService)(nil)

// RetrieverService embeds a query string and searches the vector
// store. It performs no re-ranking and applies no similarity cutoff:
// the top-K records come back regardless of absolute score.
type RetrieverService struct {
	embedder    driven.EmbeddingService
	store       driven.VectorStore
	defaultTopK int
}

// NewRetrieverService creates a new retriever.
func NewRetrieverService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	defaultTopK int,
) *RetrieverService {
	if defaultTopK <= 0 {
		defaultTopK = domain.DefaultTopK
	}
	return &RetrieverService{
		embedder:    embedder,
		store:       store,
		defaultTopK: defaultTopK,
	}
}

// Retrieve embeds the query and returns the store's result unchanged.
// An empty query or an empty collection yields an empty result; both
// are valid, non-error states.
func (s *RetrieverService) Retrieve(ctx context.Context, query string, topK int) (domain.QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return domain.QueryResult{}, nil
	}

	if topK <= 0 {
		topK = s.defaultTopK
	}

	logger.Section("Retrieval")
	logger.Debug("Query: %q (top_k=%d)", query, topK)

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return domain.QueryResult{}, err
	}

	result, err := s.store.Query(ctx, embedding, topK)
	if err != nil {
		return domain.QueryResult{}, err
	}

	logger.Debug("Retrieved %d records", len(result.Records))
	return result, nil
}
