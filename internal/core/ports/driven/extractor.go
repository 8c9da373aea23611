package driven

import (
	"context"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

// Extractor turns raw uploaded bytes into plain text plus page
// metadata. Each extractor handles specific file types.
type Extractor interface {
	// Supports reports whether this extractor handles the given
	// filename and declared MIME type.
	Supports(name, mimeType string) bool

	// Extract produces the document text and page count.
	// Failures wrap domain.ErrIngestion.
	Extract(ctx context.Context, raw *domain.RawDocument) (*ExtractResult, error)
}

// ExtractResult contains the output of text extraction.
type ExtractResult struct {
	// Text is the full extracted text.
	Text string

	// PageCount is the number of pages in the source document.
	PageCount int
}
