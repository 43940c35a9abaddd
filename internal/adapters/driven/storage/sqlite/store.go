// Package sqlite implements the vector store on a local SQLite
// database. Embeddings are stored as little-endian float32 blobs and
// similarity search is an exhaustive cosine scan, which is fast enough
// for personal document collections.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/paperchat/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is a SQLite-backed vector store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.paperchat/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %v", domain.ErrStoreFailed, err)
		}
		dataDir = filepath.Join(home, ".paperchat", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStoreFailed, err)
	}

	dbPath := filepath.Join(dataDir, "vectors.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStoreFailed, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", domain.ErrStoreFailed, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Upsert inserts or overwrites records keyed by their deterministic
// IDs. The whole batch commits in one transaction.
func (s *Store) Upsert(ctx context.Context, records []domain.VectorRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreFailed, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, source, page, position, content, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			page = excluded.page,
			position = excluded.position,
			content = excluded.content,
			embedding = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %v", domain.ErrStoreFailed, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, rec := range records {
		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		embeddingBlob := float32SliceToBytes(rec.Embedding)

		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Source, rec.Page,
			rec.Position, rec.Content, embeddingBlob, createdAt); err != nil {
			return fmt.Errorf("%w: saving record %q: %v", domain.ErrStoreFailed, rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrStoreFailed, err)
	}

	logger.Debug("Upserted %d records", len(records))
	return nil
}

// Query returns the topK records most similar to the embedding by
// cosine similarity, ties broken by insertion order. An empty
// collection yields an empty result.
func (s *Store) Query(ctx context.Context, embedding []float32, topK int) (domain.QueryResult, error) {
	if topK <= 0 {
		return domain.QueryResult{}, fmt.Errorf("%w: top_k must be positive, got %d", domain.ErrInvalidInput, topK)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, page, position, content, embedding, created_at
		FROM records
		ORDER BY rowid
	`)
	if err != nil {
		return domain.QueryResult{}, fmt.Errorf("%w: querying records: %v", domain.ErrStoreFailed, err)
	}
	defer rows.Close()

	var scored []domain.ScoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return domain.QueryResult{}, err
		}

		scored = append(scored, domain.ScoredRecord{
			Record: *rec,
			Score:  cosineSimilarity(embedding, rec.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return domain.QueryResult{}, fmt.Errorf("%w: iterating records: %v", domain.ErrStoreFailed, err)
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	return domain.QueryResult{Records: scored}, nil
}

// ListIDs returns the IDs of all persisted records.
func (s *Store) ListIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM records")
	if err != nil {
		return nil, fmt.Errorf("%w: listing IDs: %v", domain.ErrStoreFailed, err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scanning ID: %v", domain.ErrStoreFailed, err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating IDs: %v", domain.ErrStoreFailed, err)
	}

	return ids, nil
}

// Count returns the number of persisted records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting records: %v", domain.ErrStoreFailed, err)
	}
	return count, nil
}

// Reset deletes all persisted records. Destructive; callers must hold
// explicit user intent.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("%w: deleting records: %v", domain.ErrStoreFailed, err)
	}
	logger.Info("Vector store reset")
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// scanRecord scans one record row.
func scanRecord(rows *sql.Rows) (*domain.VectorRecord, error) {
	var rec domain.VectorRecord
	var embeddingBlob []byte

	if err := rows.Scan(&rec.ID, &rec.Source, &rec.Page, &rec.Position,
		&rec.Content, &embeddingBlob, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: scanning record: %v", domain.ErrStoreFailed, err)
	}

	rec.Embedding = bytesToFloat32Slice(embeddingBlob)
	return &rec, nil
}

// cosineSimilarity computes cosine similarity between two vectors.
// Mismatched or zero-length vectors score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
