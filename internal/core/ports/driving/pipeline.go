package driving

import (
	"context"

	"github.com/ragline/ragline/internal/core/domain"
)

// Pipeline is the retrieval-augmented question-answering core.
// One instance owns one corpus and its index; Ingest and Query may be
// called concurrently from multiple goroutines.
type Pipeline interface {
	// Ingest loads, splits and indexes the documents under sourceDir.
	// A blank sourceDir selects the configured default directory.
	// Returns domain.ErrNotFound when the directory does not exist and
	// domain.ErrEmptyCorpus when nothing usable was found.
	Ingest(ctx context.Context, sourceDir string) (domain.IngestMetrics, error)

	// Query answers a question from the indexed corpus.
	// Returns domain.ErrInvalidQuery when the trimmed question is empty.
	Query(ctx context.Context, question string) (domain.Answer, error)

	// History returns up to limit most-recent answers, newest first.
	History(limit int) []domain.Answer
}
