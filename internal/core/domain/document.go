package domain

import "time"

// Document represents one uploaded file after text extraction.
// It is immutable once ingested and lives only for the session.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the original filename of the upload.
	Name string

	// Content is the full extracted text.
	Content string

	// PageCount is the number of pages reported by extraction.
	PageCount int

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is the atomic retrievable unit of a document.
// Chunks are produced by the chunker and embedded before indexing;
// they are immutable once the embedding is attached.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Position is the ordinal position within the document,
	// strictly increasing from 0.
	Position int

	// Page is the page the chunk starts on, carried from extraction.
	Page int

	// Content is the text content of this chunk. Never empty.
	Content string

	// Embedding is the vector representation for semantic search.
	Embedding []float32
}

// RawDocument is the upload boundary input: raw file bytes plus a
// filename. The extraction layer turns it into a Document.
type RawDocument struct {
	// Name is the filename of the upload.
	Name string

	// Content is the raw file bytes.
	Content []byte

	// MIMEType is the declared content type, may be empty.
	MIMEType string
}
