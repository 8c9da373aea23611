// Package services contains the application core: ingestion and chat.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/adapters/driven/vector/memory"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/chunker"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driving"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/logger"
)

// Ensure IngestService implements the interfaces.
var (
	_ driving.IngestService = (*IngestService)(nil)
	_ IndexProvider         = (*IngestService)(nil)
)

// IndexProvider exposes the currently active vector index.
// Nil means no documents have been ingested yet.
type IndexProvider interface {
	Current() driven.VectorIndex
}

// IngestService turns upload batches into the active document set.
// Each successful batch replaces the previous index wholesale; the
// index is never patched in place, so searches either see the old
// complete index or the new one.
type IngestService struct {
	extractors []driven.Extractor
	chunker    *chunker.Chunker
	embedding  driven.EmbeddingService
	session    *domain.ConversationSession

	mu    sync.RWMutex
	index driven.VectorIndex
	docs  []domain.Document
}

// NewIngestService creates an ingest service bound to one session.
// Extractors are tried in order; the first that supports a file wins.
func NewIngestService(
	extractors []driven.Extractor,
	chunk *chunker.Chunker,
	embedding driven.EmbeddingService,
	session *domain.ConversationSession,
) *IngestService {
	return &IngestService{
		extractors: extractors,
		chunker:    chunk,
		embedding:  embedding,
		session:    session,
	}
}

// docResult carries the per-document outcome of extraction+chunking.
type docResult struct {
	doc    domain.Document
	chunks []domain.Chunk
	err    error
}

// Ingest extracts, chunks, embeds and indexes the given raw documents
// as one batch. Extraction and chunking failures are isolated per
// document; an embedding failure aborts the whole build so no partial
// index is ever committed.
func (s *IngestService) Ingest(ctx context.Context, raws []domain.RawDocument) (*driving.IngestReport, error) {
	logger.Section("Ingestion")
	logger.Info("Batch of %d documents", len(raws))

	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: empty upload batch", domain.ErrIngestion)
	}

	// Chunking and extraction are independent per document.
	results := make([]docResult, len(raws))
	var wg sync.WaitGroup
	for i := range raws {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.processDocument(ctx, &raws[i])
		}(i)
	}
	wg.Wait()

	report := &driving.IngestReport{}
	var batchChunks []domain.Chunk
	for i := range results {
		if results[i].err != nil {
			logger.Warn("Document %q failed: %v", raws[i].Name, results[i].err)
			report.Failures = append(report.Failures, driving.DocumentFailure{
				Name: raws[i].Name,
				Err:  results[i].err,
			})
			continue
		}
		report.Documents = append(report.Documents, results[i].doc)
		batchChunks = append(batchChunks, results[i].chunks...)
	}

	if len(report.Documents) == 0 {
		return report, fmt.Errorf("%w: no documents could be ingested", domain.ErrIngestion)
	}

	logger.Debug("Embedding %d chunks with %s", len(batchChunks), s.embedding.ModelName())
	texts := make([]string, len(batchChunks))
	for i := range batchChunks {
		texts[i] = batchChunks[i].Content
	}

	embeddings, err := s.embedding.EmbedBatch(ctx, texts)
	if err != nil {
		// All-or-nothing: the previous index stays active untouched.
		return report, fmt.Errorf("embed batch: %w", err)
	}
	if len(embeddings) != len(batchChunks) {
		return report, fmt.Errorf("%w: got %d embeddings for %d chunks",
			domain.ErrEmbeddingService, len(embeddings), len(batchChunks))
	}
	for i := range batchChunks {
		batchChunks[i].Embedding = embeddings[i]
	}

	index, err := memory.Build(batchChunks)
	if err != nil {
		return report, fmt.Errorf("build index: %w", err)
	}
	report.ChunkCount = index.Len()

	s.mu.Lock()
	replacing := s.index != nil
	s.index = index
	s.docs = report.Documents
	s.mu.Unlock()

	// Old turns referred to a document set that no longer exists.
	if replacing {
		logger.Info("Document set replaced, clearing conversation history")
		s.session.Reset()
	}

	logger.Info("Indexed %d chunks from %d documents (%d failures)",
		report.ChunkCount, len(report.Documents), len(report.Failures))
	return report, nil
}

// processDocument extracts and chunks a single upload.
func (s *IngestService) processDocument(ctx context.Context, raw *domain.RawDocument) docResult {
	extractor := s.extractorFor(raw)
	if extractor == nil {
		return docResult{err: fmt.Errorf("%w: no extractor for %q", domain.ErrIngestion, raw.Name)}
	}

	extracted, err := extractor.Extract(ctx, raw)
	if err != nil {
		return docResult{err: fmt.Errorf("extract %q: %w", raw.Name, err)}
	}

	doc := domain.Document{
		ID:        uuid.New().String(),
		Name:      raw.Name,
		Content:   extracted.Text,
		PageCount: extracted.PageCount,
		CreatedAt: time.Now(),
	}

	chunks, err := s.chunker.Split(doc)
	if err != nil {
		return docResult{err: err}
	}

	logger.Debug("Document %q: %d pages, %d chunks", doc.Name, doc.PageCount, len(chunks))
	return docResult{doc: doc, chunks: chunks}
}

// extractorFor returns the first extractor supporting the upload.
func (s *IngestService) extractorFor(raw *domain.RawDocument) driven.Extractor {
	for _, e := range s.extractors {
		if e.Supports(raw.Name, raw.MIMEType) {
			return e
		}
	}
	return nil
}

// Current returns the active vector index, or nil before any ingest.
func (s *IngestService) Current() driven.VectorIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Documents returns the currently active document set.
func (s *IngestService) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}
