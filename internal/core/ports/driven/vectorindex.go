package driven

import (
	"context"

	"github.com/ragline/ragline/internal/core/domain"
)

// VectorIndex stores chunk vectors and serves k-nearest-neighbour search.
//
// An index owns its EmbeddingService: the same embedding space is used at
// ingestion and at query time. Mismatched spaces would silently corrupt
// ranking, so callers never embed on the index's behalf.
type VectorIndex interface {
	// Add embeds the chunks and stores (vector, chunk) pairs.
	// Insertion order is preserved for deterministic tie-breaking.
	// Chunks added before a Search call are visible to it.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Search embeds the query text and returns the top k chunks by
	// descending similarity. Fewer than k indexed chunks returns all
	// of them; an empty index returns an empty slice, not an error.
	Search(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error)

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
