// Package domain defines the core business entities for ragline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A logical page or section loaded from the corpus
//   - Chunk: The unit of indexing and retrieval
//   - RetrievedChunk: A chunk paired with its similarity score
//   - Answer: One question/answer exchange with citations
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
