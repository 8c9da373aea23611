package driven

import (
	"context"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

// VectorIndex answers nearest-neighbour similarity queries over the
// chunks of one ingestion batch. An index is built once per batch and
// read-only afterwards; replacing the document set means building a
// new index, never patching the old one in place.
type VectorIndex interface {
	// Search returns the k chunks most similar to the query vector,
	// sorted by cosine similarity descending with deterministic
	// tie-breaking. Fewer than k chunks in the index means all of
	// them are returned. k <= 0 fails with ErrInvalidArgument.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error)

	// SearchWithScores is Search exposed for presentation-layer
	// transparency. Scores are numerically identical to Search's for
	// the same query.
	SearchWithScores(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error)

	// Len returns the number of indexed chunks.
	Len() int

	// Dimensions returns the embedding dimensionality of the index.
	Dimensions() int
}
