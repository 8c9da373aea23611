// Package memory provides an in-memory flat vector index.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/vec/search"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a brute-force cosine similarity index over the chunks of
// one ingestion batch. It is built once and immutable afterwards, so
// concurrent searches need no locking. Exact top-k: every chunk is
// scored on every query.
type Index struct {
	chunks     []domain.Chunk
	magnitudes []float32
	dimensions int
}

// Build constructs an index from embedded chunks. Every chunk must
// carry an embedding of the same dimensionality.
func Build(chunks []domain.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrEmptyIndex
	}

	dims := len(chunks[0].Embedding)
	if dims == 0 {
		return nil, fmt.Errorf("%w: chunk %s has no embedding", domain.ErrInvalidInput, chunks[0].ID)
	}

	idx := &Index{
		chunks:     make([]domain.Chunk, len(chunks)),
		magnitudes: make([]float32, len(chunks)),
		dimensions: dims,
	}

	for i, ch := range chunks {
		if len(ch.Embedding) != dims {
			return nil, fmt.Errorf("%w: chunk %s embedding has %d dimensions, index has %d",
				domain.ErrInvalidInput, ch.ID, len(ch.Embedding), dims)
		}
		idx.chunks[i] = ch
		idx.magnitudes[i] = search.Float32s(ch.Embedding).Magnitude()
	}

	return idx, nil
}

// Search returns the k nearest chunks by cosine similarity, sorted by
// score descending with ties broken by chunk position then document ID.
func (idx *Index) Search(_ context.Context, query []float32, k int) ([]domain.RetrievedChunk, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", domain.ErrInvalidArgument, k)
	}
	if len(query) != idx.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d",
			domain.ErrInvalidInput, len(query), idx.dimensions)
	}

	queryVec := search.Float32s(query)
	queryMag := queryVec.Magnitude()

	results := make([]domain.RetrievedChunk, len(idx.chunks))
	for i, ch := range idx.chunks {
		results[i] = domain.RetrievedChunk{
			Chunk: ch,
			Score: idx.similarity(queryVec, queryMag, i),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return domain.LessRetrieved(results[i], results[j])
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// SearchWithScores returns the same chunks with the same scores as
// Search; the separate method exists so presentation code can show
// raw similarity values next to each passage.
func (idx *Index) SearchWithScores(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error) {
	return idx.Search(ctx, query, k)
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Dimensions returns the embedding dimensionality of the index.
func (idx *Index) Dimensions() int {
	return idx.dimensions
}

// similarity computes the cosine similarity between the query and the
// i-th chunk. Zero-magnitude vectors score 0 rather than NaN.
func (idx *Index) similarity(query search.Float32s, queryMag float32, i int) float64 {
	mag := idx.magnitudes[i]
	if queryMag == 0 || mag == 0 {
		return 0
	}
	distance := query.CosineDistanceWithMagnitudesNeon(idx.chunks[i].Embedding, queryMag, mag)
	return float64(1 - distance)
}
