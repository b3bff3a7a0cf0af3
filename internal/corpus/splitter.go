package corpus

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/logger"
)

// Default splitting parameters, matching the shipped config defaults.
const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 150
)

// Splitter turns loaded documents into overlapping chunks. It prefers
// breaking on paragraph and sentence boundaries before falling back to
// hard character limits, so a sentence spanning a chunk boundary stays
// retrievable from at least one chunk.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	inner        textsplitter.RecursiveCharacter
}

// NewSplitter creates a splitter. The overlap must be non-negative and
// strictly smaller than the chunk size.
func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d: %w", chunkSize, domain.ErrInvalidInput)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d: %w",
			chunkOverlap, chunkSize, domain.ErrInvalidInput)
	}

	inner := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", ". ", " ", ""}),
	)

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		inner:        inner,
	}, nil
}

// Split chunks every document, assigning IDs of the form
// "{file-stem}-{index}" with the index counted per source file from zero.
// Identical input produces identical IDs across runs.
func (s *Splitter) Split(docs []domain.Document) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	perFile := make(map[string]int)

	for _, doc := range docs {
		pieces, err := s.inner.SplitText(doc.Content)
		if err != nil {
			return nil, fmt.Errorf("splitting %s: %w", doc.Source, err)
		}
		stem := fileStem(doc.Source)
		for _, piece := range pieces {
			if strings.TrimSpace(piece) == "" {
				continue
			}
			idx := perFile[doc.Source]
			perFile[doc.Source] = idx + 1
			chunks = append(chunks, domain.Chunk{
				ID:       fmt.Sprintf("%s-%d", stem, idx),
				Source:   doc.Source,
				FileName: doc.FileName,
				Page:     doc.Page,
				Content:  piece,
			})
		}
	}

	logger.Debug("Split %d pages into %d chunks", len(docs), len(chunks))
	return chunks, nil
}

// LoadAndSplit loads the directory and splits the result in one step,
// returning ingestion metrics alongside the chunks. Zero resulting chunks
// is domain.ErrEmptyCorpus.
func LoadAndSplit(dir string, chunkSize, chunkOverlap int) ([]domain.Chunk, domain.IngestMetrics, error) {
	splitter, err := NewSplitter(chunkSize, chunkOverlap)
	if err != nil {
		return nil, domain.IngestMetrics{}, err
	}

	docs, files, err := Load(dir)
	if err != nil {
		return nil, domain.IngestMetrics{}, err
	}

	chunks, err := splitter.Split(docs)
	if err != nil {
		return nil, domain.IngestMetrics{}, err
	}

	metrics := domain.IngestMetrics{
		Files:  files,
		Pages:  len(docs),
		Chunks: len(chunks),
	}

	if len(chunks) == 0 {
		return nil, metrics, fmt.Errorf("no supported documents found in %s: %w", dir, domain.ErrEmptyCorpus)
	}
	return chunks, metrics, nil
}

// fileStem returns the base name of a path without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
