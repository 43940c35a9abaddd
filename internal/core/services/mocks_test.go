package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockLoader implements driven.DocumentLoader for testing.
type mockLoader struct {
	docs        []domain.Document
	pages       map[string][]domain.Page
	discoverErr error
	loadErr     map[string]error
}

func (m *mockLoader) Discover(_ context.Context, _ string) ([]domain.Document, error) {
	if m.discoverErr != nil {
		return nil, m.discoverErr
	}
	return m.docs, nil
}

func (m *mockLoader) Load(_ context.Context, doc domain.Document) ([]domain.Page, error) {
	if err := m.loadErr[doc.Path]; err != nil {
		return nil, err
	}
	return m.pages[doc.Path], nil
}

// mockEmbedder implements driven.EmbeddingService for testing.
// Vectors are derived from text length so similar texts collide
// predictably.
type mockEmbedder struct {
	mu       sync.Mutex
	calls    int
	embedErr error
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.embedErr != nil {
		return nil, m.embedErr
	}

	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		vecs[i] = []float32{float32(len(t)), 1}
	}
	return vecs, nil
}

func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// mockStore implements driven.VectorStore in memory for testing.
type mockStore struct {
	mu        sync.Mutex
	records   map[string]domain.VectorRecord
	order     []string
	upsertErr error
	queryErr  error
	listErr   error
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[string]domain.VectorRecord)}
}

func (m *mockStore) Upsert(_ context.Context, records []domain.VectorRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		if _, ok := m.records[rec.ID]; !ok {
			m.order = append(m.order, rec.ID)
		}
		m.records[rec.ID] = rec
	}
	return nil
}

func (m *mockStore) Query(_ context.Context, embedding []float32, topK int) (domain.QueryResult, error) {
	if m.queryErr != nil {
		return domain.QueryResult{}, m.queryErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	scored := make([]domain.ScoredRecord, 0, len(m.order))
	for _, id := range m.order {
		rec := m.records[id]
		scored = append(scored, domain.ScoredRecord{Record: rec, Score: dot(embedding, rec.Embedding)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return domain.QueryResult{Records: scored}, nil
}

func (m *mockStore) ListIDs(_ context.Context) (map[string]struct{}, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make(map[string]struct{}, len(m.records))
	for id := range m.records {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (m *mockStore) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

func (m *mockStore) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]domain.VectorRecord)
	m.order = nil
	return nil
}

func (m *mockStore) Close() error { return nil }

func dot(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response  string
	fragments []string
	genErr    error
	prompts   []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if m.genErr != nil {
		return "", m.genErr
	}
	m.prompts = append(m.prompts, prompt)
	return m.response, nil
}

func (m *mockLLM) GenerateStream(
	_ context.Context, prompt string, _ driven.GenerateOptions, onFragment func(string),
) (string, error) {
	if m.genErr != nil {
		return "", m.genErr
	}
	m.prompts = append(m.prompts, prompt)
	var full string
	for _, f := range m.fragments {
		full += f
		if onFragment != nil {
			onFragment(f)
		}
	}
	return full, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockPrompts implements driven.PromptStore for testing.
type mockPrompts struct {
	overrides map[string]string
}

func (m *mockPrompts) Load(name string) (string, error) {
	if p, ok := m.overrides[name]; ok {
		return p, nil
	}
	switch name {
	case driven.PromptAnswer:
		return "Context:\n%s\nQuestion: %s", nil
	case driven.PromptNoSources:
		return "No relevant documents found.", nil
	default:
		return "", fmt.Errorf("unknown prompt %q", name)
	}
}

func (m *mockPrompts) Reload() {}

// mockRetriever implements driving.Retriever for testing.
type mockRetriever struct {
	result      domain.QueryResult
	retrieveErr error
	gotTopK     int
}

func (m *mockRetriever) Retrieve(_ context.Context, _ string, topK int) (domain.QueryResult, error) {
	m.gotTopK = topK
	if m.retrieveErr != nil {
		return domain.QueryResult{}, m.retrieveErr
	}
	return m.result, nil
}
