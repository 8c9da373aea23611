package domain

// RetrievedChunk pairs a chunk with its similarity score for one query.
type RetrievedChunk struct {
	// Chunk is the retrieved chunk.
	Chunk Chunk

	// Score is the cosine similarity to the query, higher is better.
	Score float64
}

// LessRetrieved defines the retrieval ranking order: score descending,
// then chunk position ascending, then document ID ascending. The
// tie-breaks keep equal-score results in a stable, reproducible order.
func LessRetrieved(a, b RetrievedChunk) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Chunk.Position != b.Chunk.Position {
		return a.Chunk.Position < b.Chunk.Position
	}
	return a.Chunk.DocumentID < b.Chunk.DocumentID
}
