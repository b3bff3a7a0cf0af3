package domain

import "time"

// RetrievedChunk is a chunk returned by a similarity search,
// paired with its relevance score. Higher scores rank first;
// equal scores keep insertion order.
type RetrievedChunk struct {
	Chunk Chunk

	// Score is the cosine similarity between the query vector and
	// the chunk vector.
	Score float64
}

// Citation is the structured provenance attached to each piece of
// retrieved evidence used in an answer.
type Citation struct {
	// Rank is the 1-based position from the similarity search.
	Rank int `json:"rank"`

	// File is the human-readable name of the cited file.
	File string `json:"file"`

	// Page is the page or section marker, or "n/a" when absent.
	Page string `json:"page"`

	// ChunkID identifies the cited chunk in the index.
	ChunkID string `json:"chunk_id"`

	// Source is the path of the cited file.
	Source string `json:"source"`
}

// Answer is one question/answer exchange, including the citations
// that ground the answer. Answers are what the bounded history holds.
type Answer struct {
	// ID uniquely identifies the exchange.
	ID string `json:"id"`

	// Question is the trimmed question as answered.
	Question string `json:"question"`

	// Text is the synthesized or extractive answer.
	Text string `json:"answer"`

	// Sources cites the retrieved chunks in rank order.
	// Empty (never nil) when nothing was retrieved.
	Sources []Citation `json:"sources"`

	// AskedAt is when the question was answered, in UTC.
	AskedAt time.Time `json:"asked_at"`
}
