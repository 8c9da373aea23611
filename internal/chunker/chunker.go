// Package chunker provides a fixed-size text chunking processor.
package chunker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunker splits document content into fixed-size chunks with overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave the window a positive stride
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Split partitions the document text into chunks of at most chunkSize
// characters, consecutive chunks sharing overlap characters. Every
// chunk has non-empty content; the trailing partial window is kept.
// Positions run 0..n-1 and dropping each chunk's leading overlap
// reconstructs the document text in order.
func (c *Chunker) Split(doc domain.Document) ([]domain.Chunk, error) {
	if strings.TrimSpace(doc.Content) == "" {
		return nil, fmt.Errorf("%w: %q has no extractable text", domain.ErrIngestion, doc.Name)
	}
	if doc.PageCount <= 0 {
		return nil, fmt.Errorf("%w: %q extraction produced zero pages", domain.ErrIngestion, doc.Name)
	}

	content := doc.Content
	contentLen := len(content)
	stride := c.chunkSize - c.overlap

	chunks := make([]domain.Chunk, 0, contentLen/stride+1)

	position := 0
	start := 0

	for start < contentLen {
		end := start + c.chunkSize
		if end > contentLen {
			end = contentLen
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Position:   position,
			Page:       pageAt(start, contentLen, doc.PageCount),
			Content:    content[start:end],
		})
		position++

		if end == contentLen {
			break
		}
		start += stride
	}

	return chunks, nil
}

// pageAt maps a byte offset to a 1-based page number by proportional
// position. Extraction strips page boundaries, so this is an estimate
// that stays within [1, pageCount].
func pageAt(offset, contentLen, pageCount int) int {
	page := offset*pageCount/contentLen + 1
	if page > pageCount {
		page = pageCount
	}
	return page
}
