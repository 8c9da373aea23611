package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrIngestion indicates a single document could not be ingested
	// (empty extraction, zero pages). Per-document: it never aborts
	// the rest of the upload batch.
	ErrIngestion = errors.New("document ingestion failed")

	// ErrEmbeddingService indicates the embedding service failed.
	// Fatal to the current index build or query, recoverable by retry.
	ErrEmbeddingService = errors.New("embedding service failed")

	// ErrGenerationService indicates the language model call failed.
	// The chat pipeline absorbs it into the turn's answer text.
	ErrGenerationService = errors.New("generation service failed")

	// ErrEmptyIndex indicates an index build was attempted with no
	// chunks. Expected before any documents are uploaded.
	ErrEmptyIndex = errors.New("no chunks to index")

	// ErrNoDocuments indicates a question was asked before any
	// documents were ingested. User-facing guidance, not a fault.
	ErrNoDocuments = errors.New("no documents loaded")

	// ErrInvalidArgument indicates caller misuse, e.g. k <= 0.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
