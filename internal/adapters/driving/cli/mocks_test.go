package cli

import (
	"context"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockAnswerer is a mock implementation of driving.Answerer.
type mockAnswerer struct {
	answer    *domain.Answer
	fragments []string
	err       error
}

func (m *mockAnswerer) Ask(
	_ context.Context,
	question string,
	opts driving.AskOptions,
) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	if opts.OnFragment != nil {
		for _, fragment := range m.fragments {
			opts.OnFragment(fragment)
		}
	}
	answer := *m.answer
	answer.Question = question
	return &answer, nil
}

// mockIngestor is a mock implementation of driving.Ingestor.
type mockIngestor struct {
	report   *driving.IngestReport
	err      error
	resets   int
	gotPaths []string
}

func (m *mockIngestor) Ingest(
	_ context.Context,
	opts driving.IngestOptions,
) (*driving.IngestReport, error) {
	m.gotPaths = opts.Paths
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockIngestor) Reset(_ context.Context) error {
	m.resets++
	return m.err
}

// mockStore is a mock vector store for the status command.
type mockStore struct {
	count int
	err   error
}

func (m *mockStore) Upsert(_ context.Context, _ []domain.VectorRecord) error { return nil }

func (m *mockStore) Query(_ context.Context, _ []float32, _ int) (domain.QueryResult, error) {
	return domain.QueryResult{}, nil
}

func (m *mockStore) ListIDs(_ context.Context) (map[string]struct{}, error) { return nil, nil }

func (m *mockStore) Count(_ context.Context) (int, error) { return m.count, m.err }

func (m *mockStore) Reset(_ context.Context) error { return nil }

func (m *mockStore) Close() error { return nil }

// mockModelService covers both the embedding and LLM ports where the
// status command only needs a name and a ping.
type mockModelService struct {
	name    string
	pingErr error
}

func (m *mockModelService) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1}, nil
}

func (m *mockModelService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i := range vecs {
		vecs[i] = []float32{1}
	}
	return vecs, nil
}

func (m *mockModelService) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return "", nil
}

func (m *mockModelService) GenerateStream(
	_ context.Context, _ string, _ driven.GenerateOptions, _ func(string),
) (string, error) {
	return "", nil
}

func (m *mockModelService) ModelName() string            { return m.name }
func (m *mockModelService) Ping(_ context.Context) error { return m.pingErr }
func (m *mockModelService) Close() error                 { return nil }

// setupTestServices installs mock services and returns a cleanup that
// restores the previous state.
func setupTestServices() func() {
	oldSettings := settings
	oldStore := vectorStore
	oldEmbedding := embeddingService
	oldLLM := llmService
	oldIngest := ingestService
	oldRetriever := retrieverService
	oldAnswer := answerService

	settings = domain.DefaultSettings()
	settings.InputFolder = "/docs"
	vectorStore = &mockStore{count: 7}
	embeddingService = &mockModelService{name: "nomic-embed-text"}
	llmService = &mockModelService{name: "llama3.2"}
	ingestService = &mockIngestor{report: &driving.IngestReport{
		Documents: 1,
		Pages:     3,
		Chunks:    12,
		Added:     12,
	}}
	answerService = &mockAnswerer{answer: &domain.Answer{
		Text: "Collect rent from other players.",
		Citations: []domain.Citation{
			{Source: "monopoly.pdf", Page: 4},
		},
	}}

	return func() {
		settings = oldSettings
		vectorStore = oldStore
		embeddingService = oldEmbedding
		llmService = oldLLM
		ingestService = oldIngest
		retrieverService = oldRetriever
		answerService = oldAnswer
	}
}
