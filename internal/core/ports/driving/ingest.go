// Package driving provides interfaces for application entry points (primary/inbound ports).
package driving

import (
	"context"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

// IngestService loads an upload batch into the active document set.
type IngestService interface {
	// Ingest extracts, chunks, embeds and indexes the given raw
	// documents as one batch, replacing any previous document set.
	// Per-document extraction or chunking failures are reported in
	// the IngestReport and do not abort the batch; an embedding
	// failure aborts the whole build with no partial index.
	Ingest(ctx context.Context, raws []domain.RawDocument) (*IngestReport, error)

	// Documents returns the currently active document set.
	Documents() []domain.Document
}

// IngestReport summarises one upload batch.
type IngestReport struct {
	// Documents are the successfully ingested documents.
	Documents []domain.Document

	// ChunkCount is the number of chunks indexed.
	ChunkCount int

	// Failures lists the documents that could not be ingested.
	Failures []DocumentFailure
}

// DocumentFailure records one per-document ingestion failure.
type DocumentFailure struct {
	// Name is the filename of the failed upload.
	Name string

	// Err is the failure cause.
	Err error
}
