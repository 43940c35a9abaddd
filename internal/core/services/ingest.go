package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/paperchat/internal/chunker"
	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: discover PDFs, extract
// pages, chunk, embed and upsert into the vector store.
type IngestService struct {
	loader   driven.DocumentLoader
	splitter *chunker.Chunker
	embedder driven.EmbeddingService
	store    driven.VectorStore
	settings domain.Settings
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	loader driven.DocumentLoader,
	splitter *chunker.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	settings domain.Settings,
) *IngestService {
	return &IngestService{
		loader:   loader,
		splitter: splitter,
		embedder: embedder,
		store:    store,
		settings: settings,
	}
}

// embedJob is one batch of chunks to embed and upsert.
type embedJob struct {
	chunks []domain.Chunk
}

// Ingest runs the pipeline. Per-file and per-batch failures are
// recorded and skipped so a partial ingestion can still succeed;
// committed batches stay persisted even when later batches fail.
func (s *IngestService) Ingest(ctx context.Context, opts driving.IngestOptions) (*driving.IngestReport, error) {
	started := time.Now()
	report := &driving.IngestReport{RunID: uuid.New().String()}

	logger.Section("Ingestion")
	logger.Info("Run %s: input folder %q", report.RunID, s.settings.InputFolder)

	docs, err := s.resolveDocuments(ctx, opts)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Store holds %d records", len(existing))

	// Load and chunk sequentially; the expensive part is embedding,
	// which is parallelised below.
	var pending []domain.Chunk
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pages, err := s.loader.Load(ctx, doc)
		if err != nil {
			logger.Warn("Skipping %q: %v", doc.Path, err)
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", doc.Path, err))
			continue
		}

		report.Documents++
		report.Pages += len(pages)

		for _, chunk := range s.splitter.SplitAll(pages) {
			report.Chunks++
			if _, ok := existing[chunk.ID]; ok {
				report.Skipped++
				continue
			}
			pending = append(pending, chunk)
		}
	}

	logger.Info("%d chunks to embed (%d already stored)", len(pending), report.Skipped)

	if len(pending) > 0 {
		s.embedAndStore(ctx, pending, report)
	}

	report.Duration = time.Since(started)
	logger.Info("Run %s finished: %d added, %d skipped, %d failures in %s",
		report.RunID, report.Added, report.Skipped, len(report.Failures), report.Duration)

	return report, nil
}

// resolveDocuments lists the documents for the run: the whole input
// folder, or the explicit paths given in the options.
func (s *IngestService) resolveDocuments(ctx context.Context, opts driving.IngestOptions) ([]domain.Document, error) {
	if len(opts.Paths) == 0 {
		return s.loader.Discover(ctx, s.settings.InputFolder)
	}

	docs := make([]domain.Document, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		docs = append(docs, domain.Document{Path: path})
	}
	return docs, nil
}

// embedAndStore embeds pending chunks in batches on a bounded worker
// pool and upserts each batch as it completes. Batch failures are
// recorded on the report and skipped.
func (s *IngestService) embedAndStore(ctx context.Context, pending []domain.Chunk, report *driving.IngestReport) {
	batchSize := s.settings.BatchSize
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}
	workers := s.settings.Workers
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	if workers > len(pending)/batchSize+1 {
		workers = len(pending)/batchSize + 1
	}

	jobs := make(chan embedJob)

	var mu sync.Mutex // guards report
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				added, err := s.processBatch(ctx, job.chunks)

				mu.Lock()
				if err != nil {
					logger.Warn("Batch of %d chunks failed: %v", len(job.chunks), err)
					report.Failures = append(report.Failures,
						fmt.Sprintf("batch %s..: %v", job.chunks[0].ID, err))
				} else {
					report.Added += added
				}
				mu.Unlock()
			}
		}()
	}

	for start := 0; start < len(pending); start += batchSize {
		end := start + batchSize
		if end > len(pending) {
			end = len(pending)
		}
		select {
		case jobs <- embedJob{chunks: pending[start:end]}:
		case <-ctx.Done():
			start = len(pending)
		}
	}
	close(jobs)
	wg.Wait()
}

// processBatch embeds one batch and writes it to the store.
func (s *IngestService) processBatch(ctx context.Context, chunks []domain.Chunk) (int, error) {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, err
	}

	records := make([]domain.VectorRecord, len(chunks))
	for i, chunk := range chunks {
		chunk.Embedding = vectors[i]
		records[i] = domain.RecordFromChunk(chunk)
	}

	if err := s.store.Upsert(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

// Reset deletes all persisted records. Destructive; the caller is
// responsible for confirming user intent.
func (s *IngestService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}
