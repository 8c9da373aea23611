package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/chunker"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
)

func newIngest(extractors []driven.Extractor, embed driven.EmbeddingService, session *domain.ConversationSession) *IngestService {
	return NewIngestService(extractors, chunker.New(chunker.WithChunkSize(100), chunker.WithOverlap(10)), embed, session)
}

func pdfExtractor(texts map[string]string) *mockExtractor {
	return &mockExtractor{ext: ".pdf", texts: texts}
}

func TestIngestService_Ingest_EmptyBatch(t *testing.T) {
	svc := newIngest([]driven.Extractor{pdfExtractor(nil)}, &mockEmbeddingService{}, domain.NewConversationSession())

	_, err := svc.Ingest(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrIngestion)
}

func TestIngestService_Ingest_Success(t *testing.T) {
	extractor := pdfExtractor(map[string]string{
		"a.pdf": "The sky is blue. Grass is green.",
		"b.pdf": "Go is a compiled language.",
	})
	svc := newIngest([]driven.Extractor{extractor}, &mockEmbeddingService{}, domain.NewConversationSession())

	report, err := svc.Ingest(context.Background(), []domain.RawDocument{
		{Name: "a.pdf"},
		{Name: "b.pdf"},
	})
	require.NoError(t, err)

	assert.Len(t, report.Documents, 2)
	assert.Empty(t, report.Failures)
	assert.Equal(t, 2, report.ChunkCount)

	// Batch order is preserved in the document set.
	docs := svc.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "a.pdf", docs[0].Name)
	assert.Equal(t, "b.pdf", docs[1].Name)

	index := svc.Current()
	require.NotNil(t, index)
	assert.Equal(t, 2, index.Len())
}

func TestIngestService_Ingest_PerDocumentFailureIsolated(t *testing.T) {
	extractor := pdfExtractor(map[string]string{
		"good.pdf": "Some proper content here.",
		"bad.pdf":  "   ", // chunker rejects whitespace-only text
	})
	svc := newIngest([]driven.Extractor{extractor}, &mockEmbeddingService{}, domain.NewConversationSession())

	report, err := svc.Ingest(context.Background(), []domain.RawDocument{
		{Name: "good.pdf"},
		{Name: "bad.pdf"},
	})
	require.NoError(t, err)

	assert.Len(t, report.Documents, 1)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "bad.pdf", report.Failures[0].Name)
	assert.ErrorIs(t, report.Failures[0].Err, domain.ErrIngestion)

	require.NotNil(t, svc.Current())
}

func TestIngestService_Ingest_UnsupportedFileReported(t *testing.T) {
	svc := newIngest([]driven.Extractor{pdfExtractor(map[string]string{"a.pdf": "content"})},
		&mockEmbeddingService{}, domain.NewConversationSession())

	report, err := svc.Ingest(context.Background(), []domain.RawDocument{
		{Name: "a.pdf"},
		{Name: "image.png"},
	})
	require.NoError(t, err)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "image.png", report.Failures[0].Name)
	assert.ErrorIs(t, report.Failures[0].Err, domain.ErrIngestion)
}

func TestIngestService_Ingest_AllDocumentsFail(t *testing.T) {
	extractor := &mockExtractor{ext: ".pdf", err: errors.New("corrupt file")}
	svc := newIngest([]driven.Extractor{extractor}, &mockEmbeddingService{}, domain.NewConversationSession())

	report, err := svc.Ingest(context.Background(), []domain.RawDocument{{Name: "a.pdf"}})
	assert.ErrorIs(t, err, domain.ErrIngestion)
	assert.Len(t, report.Failures, 1)
	assert.Nil(t, svc.Current())
}

func TestIngestService_Ingest_EmbeddingFailureLeavesNoPartialIndex(t *testing.T) {
	extractor := pdfExtractor(map[string]string{"a.pdf": "first batch content"})
	embed := &mockEmbeddingService{}
	session := domain.NewConversationSession()
	svc := newIngest([]driven.Extractor{extractor}, embed, session)

	// First batch succeeds.
	_, err := svc.Ingest(context.Background(), []domain.RawDocument{{Name: "a.pdf"}})
	require.NoError(t, err)
	previous := svc.Current()
	require.NotNil(t, previous)

	// Second batch fails at the embedding stage; the previous index
	// must stay active untouched.
	embed.embedErr = domain.ErrEmbeddingService
	_, err = svc.Ingest(context.Background(), []domain.RawDocument{{Name: "a.pdf"}})
	assert.ErrorIs(t, err, domain.ErrEmbeddingService)
	assert.Same(t, previous, svc.Current())
}

func TestIngestService_Ingest_ReplacingDocumentSetResetsSession(t *testing.T) {
	extractor := pdfExtractor(map[string]string{"a.pdf": "first content", "b.pdf": "second content"})
	session := domain.NewConversationSession()
	svc := newIngest([]driven.Extractor{extractor}, &mockEmbeddingService{}, session)

	_, err := svc.Ingest(context.Background(), []domain.RawDocument{{Name: "a.pdf"}})
	require.NoError(t, err)

	session.Append(domain.ConversationTurn{Question: "q", Answer: "a"})
	require.Equal(t, 1, session.Len())

	_, err = svc.Ingest(context.Background(), []domain.RawDocument{{Name: "b.pdf"}})
	require.NoError(t, err)

	// Old turns referred to the replaced documents.
	assert.Equal(t, 0, session.Len())
}

func TestIngestService_Ingest_FirstIngestKeepsSession(t *testing.T) {
	extractor := pdfExtractor(map[string]string{"a.pdf": "content"})
	session := domain.NewConversationSession()
	svc := newIngest([]driven.Extractor{extractor}, &mockEmbeddingService{}, session)

	// A turn asked before any documents were loaded survives the
	// first ingest: there was no prior document set to invalidate it.
	session.Append(domain.ConversationTurn{Question: "q", Answer: NoDocumentsAnswer})

	_, err := svc.Ingest(context.Background(), []domain.RawDocument{{Name: "a.pdf"}})
	require.NoError(t, err)
	assert.Equal(t, 1, session.Len())
}
