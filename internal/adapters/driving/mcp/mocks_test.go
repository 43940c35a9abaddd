package mcp

import (
	"context"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
)

// mockAnswerer is a mock implementation of driving.Answerer.
type mockAnswerer struct {
	answer  *domain.Answer
	err     error
	gotTopK int
}

func (m *mockAnswerer) Ask(
	_ context.Context,
	_ string,
	opts driving.AskOptions,
) (*domain.Answer, error) {
	m.gotTopK = opts.TopK
	return m.answer, m.err
}

// mockIngestor is a mock implementation of driving.Ingestor.
type mockIngestor struct {
	report   *driving.IngestReport
	err      error
	gotPaths []string
}

func (m *mockIngestor) Ingest(
	_ context.Context,
	opts driving.IngestOptions,
) (*driving.IngestReport, error) {
	m.gotPaths = opts.Paths
	return m.report, m.err
}

func (m *mockIngestor) Reset(_ context.Context) error {
	return m.err
}

// mockCountStore is a mock vector store exposing only what the status
// resource needs.
type mockCountStore struct {
	count int
	err   error
}

func (m *mockCountStore) Upsert(_ context.Context, _ []domain.VectorRecord) error { return nil }

func (m *mockCountStore) Query(_ context.Context, _ []float32, _ int) (domain.QueryResult, error) {
	return domain.QueryResult{}, nil
}

func (m *mockCountStore) ListIDs(_ context.Context) (map[string]struct{}, error) { return nil, nil }

func (m *mockCountStore) Count(_ context.Context) (int, error) { return m.count, m.err }

func (m *mockCountStore) Reset(_ context.Context) error { return nil }

func (m *mockCountStore) Close() error { return nil }
