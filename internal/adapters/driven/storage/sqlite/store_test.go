package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testRecord(id string, embedding []float32) domain.VectorRecord {
	return domain.VectorRecord{
		ID:        id,
		Source:    "/data/report.pdf",
		Page:      1,
		Position:  0,
		Content:   "content for " + id,
		Embedding: embedding,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := setupTestStore(t)
	assert.NotEmpty(t, store.Path())

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpsert_And_Query_SelfRetrieval(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	records := []domain.VectorRecord{
		testRecord("a.pdf:1:0", []float32{1, 0, 0}),
		testRecord("a.pdf:1:1", []float32{0, 1, 0}),
		testRecord("a.pdf:2:0", []float32{0, 0, 1}),
	}
	require.NoError(t, store.Upsert(ctx, records))

	// Querying with a stored embedding returns that record first.
	result, err := store.Query(ctx, []float32{0, 1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "a.pdf:1:1", result.Records[0].Record.ID)
	assert.InDelta(t, 1.0, result.Records[0].Score, 1e-6)
}

func TestQuery_TopKAndOrdering(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	records := []domain.VectorRecord{
		testRecord("far", []float32{-1, 0}),
		testRecord("near", []float32{1, 0.1}),
		testRecord("nearest", []float32{1, 0}),
	}
	require.NoError(t, store.Upsert(ctx, records))

	result, err := store.Query(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "nearest", result.Records[0].Record.ID)
	assert.Equal(t, "near", result.Records[1].Record.ID)
	assert.Greater(t, result.Records[0].Score, result.Records[1].Score)
}

func TestQuery_TieBrokenByInsertionOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Identical embeddings, inserted in a known order.
	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{
		testRecord("first", []float32{1, 1}),
		testRecord("second", []float32{1, 1}),
	}))

	result, err := store.Query(ctx, []float32{1, 1}, 2)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "first", result.Records[0].Record.ID)
	assert.Equal(t, "second", result.Records[1].Record.ID)
}

func TestQuery_EmptyCollection(t *testing.T) {
	store := setupTestStore(t)

	result, err := store.Query(context.Background(), []float32{1, 2, 3}, 5)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestQuery_InvalidTopK(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Query(context.Background(), []float32{1}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsert_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	records := []domain.VectorRecord{
		testRecord("a.pdf:1:0", []float32{1, 0}),
		testRecord("a.pdf:1:1", []float32{0, 1}),
	}

	require.NoError(t, store.Upsert(ctx, records))
	require.NoError(t, store.Upsert(ctx, records))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUpsert_OverwritesContent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rec := testRecord("a.pdf:1:0", []float32{1, 0})
	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{rec}))

	rec.Content = "updated content"
	rec.Embedding = []float32{0, 1}
	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{rec}))

	result, err := store.Query(ctx, []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "updated content", result.Records[0].Record.Content)
}

func TestUpsert_EmptyBatch(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Upsert(context.Background(), nil))
}

func TestReset(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{
		testRecord("a.pdf:1:0", []float32{1, 0}),
	}))

	require.NoError(t, store.Reset(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	result, err := store.Query(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestListIDs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{
		testRecord("a.pdf:1:0", []float32{1}),
		testRecord("a.pdf:1:1", []float32{2}),
	}))

	ids, err = store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, "a.pdf:1:0")
	assert.Contains(t, ids, "a.pdf:1:1")
}

func TestReopen_PersistsRecords(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, []domain.VectorRecord{
		testRecord("a.pdf:1:0", []float32{0.5, 0.5}),
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	result, err := reopened.Query(ctx, []float32{0.5, 0.5}, 1)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.InDelta(t, 1.0, result.Records[0].Score, 1e-6)
}

func TestFloat32RoundTrip(t *testing.T) {
	tests := [][]float32{
		nil,
		{},
		{0},
		{1.5, -2.25, 3.125},
		{3.4e38, -3.4e38, 1e-38},
	}

	for i, vec := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			got := bytesToFloat32Slice(float32SliceToBytes(vec))
			if len(vec) == 0 {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, vec, got)
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"length mismatch", []float32{1, 2}, []float32{1}, 0.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}
