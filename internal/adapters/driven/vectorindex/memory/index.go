// Package memory provides an in-process vector index using brute-force
// cosine similarity. Vectors are L2-normalised at insertion so search
// reduces to a dot product.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index stores (vector, chunk) pairs in insertion order and serves
// top-k similarity search over them.
type Index struct {
	embedder driven.EmbeddingService

	mu      sync.RWMutex
	chunks  []domain.Chunk
	vectors [][]float32
}

// NewIndex creates an empty index over the given embedding service.
// The same service embeds chunks at insertion and queries at search
// time, keeping both in one embedding space.
func NewIndex(embedder driven.EmbeddingService) *Index {
	return &Index{embedder: embedder}
}

// Add embeds the chunks in one batch and appends them to the index.
// Embedding happens outside the index lock; the append is atomic, so a
// concurrent Search sees either none or all of the added chunks.
func (idx *Index) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := idx.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	for i := range vectors {
		normalize(vectors[i])
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = append(idx.chunks, chunks...)
	idx.vectors = append(idx.vectors, vectors...)
	return nil
}

// Search embeds the query and returns the top k chunks by descending
// cosine similarity. Ties keep insertion order. An empty index yields
// an empty result, not an error.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	if k <= 0 {
		return []domain.RetrievedChunk{}, nil
	}

	vec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	normalize(vec)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	scored := make([]domain.RetrievedChunk, len(idx.chunks))
	for i := range idx.chunks {
		scored[i] = domain.RetrievedChunk{
			Chunk: idx.chunks[i],
			Score: dot(idx.vectors[i], vec),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]domain.RetrievedChunk, k)
	copy(results, scored[:k])
	return results, nil
}

// Count returns the number of stored chunks.
func (idx *Index) Count(_ context.Context) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks), nil
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}

// normalize scales v to unit length in place. A zero vector is left
// untouched and scores zero against everything.
func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}

// dot computes the inner product of two equal-dimension vectors.
func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
