package domain

// Document is one logical page or section of a source file after loading.
// Plain-text files load as a single document; structured formats may load
// as several, one per section. Immutable once loaded.
type Document struct {
	// Source is the path of the file this document was loaded from.
	Source string

	// FileName is the human-readable name of the source file.
	FileName string

	// Page is an optional page or section marker within the file.
	// Empty when the format has no page structure.
	Page string

	// Content is the full text of this page or section.
	Content string
}

// Chunk is a bounded, overlapping slice of a document's text with a
// stable identity. Chunks are created during ingestion and never mutated.
type Chunk struct {
	// ID is the stable chunk identifier, "{file-stem}-{index}" with the
	// index counted per source file from zero. Re-ingesting identical
	// content yields identical IDs.
	ID string

	// Source is the path of the originating file.
	Source string

	// FileName is the human-readable name of the originating file.
	FileName string

	// Page is the page or section marker inherited from the document.
	Page string

	// Content is the chunk text. The chunk owns its own copy.
	Content string
}

// IngestMetrics reports what an ingestion run processed.
type IngestMetrics struct {
	// Files is the number of supported files loaded.
	Files int `json:"files"`

	// Pages is the number of logical pages or sections parsed.
	Pages int `json:"pages"`

	// Chunks is the number of chunks produced by splitting.
	Chunks int `json:"chunks"`

	// IndexSize is the total chunk count held by the index after the
	// run, when the index can report it.
	IndexSize int `json:"index_size,omitempty"`
}
