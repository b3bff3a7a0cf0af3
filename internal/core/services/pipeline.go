package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/core/ports/driven"
	"github.com/ragline/ragline/internal/core/ports/driving"
	"github.com/ragline/ragline/internal/corpus"
	"github.com/ragline/ragline/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.Pipeline = (*PipelineService)(nil)

// Pipeline defaults, applied when an option is zero.
const (
	DefaultTopK         = 4
	DefaultHistoryLimit = 50
)

// PipelineOptions tunes chunking, retrieval and history retention.
// Zero values select the defaults.
type PipelineOptions struct {
	// DefaultSourceDir is used when Ingest is called with a blank
	// source directory.
	DefaultSourceDir string

	ChunkSize    int
	ChunkOverlap int
	TopK         int
	HistoryLimit int
}

// PipelineService orchestrates ingestion, retrieval and answer
// synthesis over a vector index.
type PipelineService struct {
	index       driven.VectorIndex
	synthesizer *Synthesizer

	defaultSource string
	chunkSize     int
	chunkOverlap  int
	topK          int

	mu      sync.Mutex
	history *historyRing
}

// NewPipelineService creates the pipeline. The synthesizer may be
// extractive-only; the index decides persistence.
func NewPipelineService(index driven.VectorIndex, synthesizer *Synthesizer, opts PipelineOptions) (*PipelineService, error) {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = corpus.DefaultChunkSize
	}
	if opts.ChunkOverlap == 0 {
		opts.ChunkOverlap = corpus.DefaultChunkOverlap
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}

	// Validate chunking options up front rather than on first ingest.
	if _, err := corpus.NewSplitter(opts.ChunkSize, opts.ChunkOverlap); err != nil {
		return nil, fmt.Errorf("configuring splitter: %w", err)
	}

	return &PipelineService{
		index:         index,
		synthesizer:   synthesizer,
		defaultSource: opts.DefaultSourceDir,
		chunkSize:     opts.ChunkSize,
		chunkOverlap:  opts.ChunkOverlap,
		topK:          opts.TopK,
		history:       newHistoryRing(opts.HistoryLimit),
	}, nil
}

// Ingest loads documents under sourceDir, splits them into chunks and
// indexes them. Re-ingesting the same directory produces the same
// chunk IDs, so persistent indexes update in place.
func (p *PipelineService) Ingest(ctx context.Context, sourceDir string) (domain.IngestMetrics, error) {
	if strings.TrimSpace(sourceDir) == "" {
		sourceDir = p.defaultSource
	}

	logger.Section("Ingestion")
	logger.Debug("Source directory: %s", sourceDir)

	chunks, metrics, err := corpus.LoadAndSplit(sourceDir, p.chunkSize, p.chunkOverlap)
	if err != nil {
		return domain.IngestMetrics{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.index.Add(ctx, chunks); err != nil {
		return domain.IngestMetrics{}, fmt.Errorf("indexing chunks: %w", err)
	}

	if n, err := p.index.Count(ctx); err == nil {
		metrics.IndexSize = n
	} else {
		logger.Warn("Counting indexed chunks: %v", err)
	}

	logger.Info("Ingested %d files, %d pages, %d chunks", metrics.Files, metrics.Pages, metrics.Chunks)
	return metrics, nil
}

// Query retrieves the most relevant chunks for the question and
// synthesizes an answer with citations, recording it in history.
func (p *PipelineService) Query(ctx context.Context, question string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("question must not be blank: %w", domain.ErrInvalidQuery)
	}

	logger.Section("Query")
	logger.Debug("Question: %q", question)

	// Retrieval runs outside the lock so slow embedding backends do
	// not block concurrent ingests.
	retrieved, err := p.index.Search(ctx, question, p.topK)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("searching index: %w", err)
	}
	logger.Debug("Retrieved %d chunks", len(retrieved))

	text := p.synthesizer.Synthesize(ctx, question, retrieved)

	sources := make([]domain.Citation, 0, len(retrieved))
	for i, r := range retrieved {
		page := r.Chunk.Page
		if page == "" {
			page = "n/a"
		}
		sources = append(sources, domain.Citation{
			Rank:    i + 1,
			File:    r.Chunk.FileName,
			Page:    page,
			ChunkID: r.Chunk.ID,
			Source:  r.Chunk.Source,
		})
	}

	answer := domain.Answer{
		ID:       uuid.NewString(),
		Question: question,
		Text:     text,
		Sources:  sources,
		AskedAt:  time.Now().UTC(),
	}

	p.mu.Lock()
	p.history.append(answer)
	p.mu.Unlock()

	return answer, nil
}

// History returns up to limit recorded answers, newest first. A
// non-positive limit returns everything retained.
func (p *PipelineService) History(limit int) []domain.Answer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.history.recent(limit)
}
