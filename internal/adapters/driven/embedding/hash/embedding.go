// Package hash provides a deterministic embedding service that needs no
// external provider. It hashes the input text with SHA-256 and maps the
// digest bytes into the vector space.
//
// The vectors carry no semantic meaning; they are a structural stand-in
// that keeps the rest of the pipeline reproducible and testable without
// network access or paid APIs. Identical text always yields an identical
// vector of exactly the configured dimension.
package hash

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ragline/ragline/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions is the vector size used when none is configured.
const DefaultDimensions = 384

// emptySeed stands in for input that is blank after trimming.
const emptySeed = "empty"

// EmbeddingService generates deterministic hash-based embeddings.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates a hash embedding service with the given
// vector dimension. Non-positive dimensions fall back to the default.
func NewEmbeddingService(dimensions int) *EmbeddingService {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &EmbeddingService{dimensions: dimensions}
}

// Embed generates a vector embedding for the given text.
// It never fails; any text, including the empty string, is valid input.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	return s.vectorize(text), nil
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = s.vectorize(text)
	}
	return embeddings, nil
}

// vectorize hashes "{seed}-{counter}" rounds of SHA-256 and maps each
// digest byte into [0,1] until the vector reaches the configured
// dimension, truncating any excess from the final round.
func (s *EmbeddingService) vectorize(text string) []float32 {
	seed := strings.TrimSpace(text)
	if seed == "" {
		seed = emptySeed
	}

	vector := make([]float32, 0, s.dimensions+sha256.Size)
	for counter := 0; len(vector) < s.dimensions; counter++ {
		digest := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", seed, counter)))
		for _, b := range digest {
			vector = append(vector, float32(b)/255)
		}
	}
	return vector[:s.dimensions]
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return "hash-sha256"
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
