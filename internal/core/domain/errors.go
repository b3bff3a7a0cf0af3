package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the ingestion source directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCorpus indicates scanning and splitting produced zero chunks.
	ErrEmptyCorpus = errors.New("no usable documents in corpus")

	// ErrInvalidQuery indicates the question was blank after trimming.
	// The index is never touched for such a query.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidInput indicates malformed configuration or arguments,
	// such as a chunk overlap that is not smaller than the chunk size.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingBackend indicates an external embedding call failed.
	// Fatal for ingestion; the hash fallback embedder never produces it.
	ErrEmbeddingBackend = errors.New("embedding backend failure")

	// ErrSynthesisBackend indicates the generative backend failed.
	// Always absorbed internally: the pipeline degrades to the
	// extractive answer instead of surfacing it.
	ErrSynthesisBackend = errors.New("synthesis backend failure")
)
