// Package plaintext extracts text from plain text and markdown files.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// supportedExtensions maps file extensions this extractor handles.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".text":     true,
}

// Extractor handles plain text documents. The content is used as-is
// and always counts as a single page.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Supports reports whether this extractor handles the given file.
func (e *Extractor) Supports(name, mimeType string) bool {
	if mimeType == "text/plain" || mimeType == "text/markdown" {
		return true
	}
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Extract returns the document content as text.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*driven.ExtractResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	return &driven.ExtractResult{
		Text:      string(raw.Content),
		PageCount: 1,
	}, nil
}
