package cli

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/corpus"
	"github.com/ragline/ragline/internal/logger"
)

var (
	ingestSource string
	ingestJSON   bool
	ingestWatch  bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest documents into the index",
	Long: `Scans the source directory for supported documents (.txt, .md),
splits them into overlapping chunks and indexes them.

With --watch, keeps running and re-ingests whenever files under the
source directory change. Stop with Ctrl-C.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestSource, "source", "s", "", "source directory (default from config)")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output metrics as JSON")
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "re-ingest on file changes")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	source := ingestSource
	if source == "" {
		source = cfg.SourceDir
	}

	metrics, err := pipeline.Ingest(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if err := outputIngestMetrics(cmd, metrics); err != nil {
		return err
	}

	if !ingestWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for changes...\n", source)
	err = corpus.Watch(ctx, source, corpus.DefaultDebounce, func() {
		start := time.Now()
		m, err := pipeline.Ingest(ctx, source)
		if err != nil {
			logger.Warn("Re-ingest failed: %v", err)
			return
		}
		cmd.Printf("Re-ingested %d chunks from %d files in %s\n",
			m.Chunks, m.Files, time.Since(start).Round(time.Millisecond))
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

func outputIngestMetrics(cmd *cobra.Command, metrics domain.IngestMetrics) error {
	if ingestJSON {
		data, err := json.MarshalIndent(metrics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal metrics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Ingested %d files (%d pages) into %d chunks\n",
		metrics.Files, metrics.Pages, metrics.Chunks)
	if metrics.IndexSize > 0 {
		cmd.Printf("Index now holds %d chunks\n", metrics.IndexSize)
	}
	return nil
}
