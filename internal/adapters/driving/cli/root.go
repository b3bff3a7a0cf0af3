// Package cli implements the command-line interface. Commands wire
// adapters together from configuration and delegate to the pipeline
// driving port.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	embeddinghash "github.com/ragline/ragline/internal/adapters/driven/embedding/hash"
	embeddingollama "github.com/ragline/ragline/internal/adapters/driven/embedding/ollama"
	embeddingopenai "github.com/ragline/ragline/internal/adapters/driven/embedding/openai"
	llmollama "github.com/ragline/ragline/internal/adapters/driven/llm/ollama"
	llmopenai "github.com/ragline/ragline/internal/adapters/driven/llm/openai"
	indexmemory "github.com/ragline/ragline/internal/adapters/driven/vectorindex/memory"
	indexsqlite "github.com/ragline/ragline/internal/adapters/driven/vectorindex/sqlite"
	"github.com/ragline/ragline/internal/config"
	"github.com/ragline/ragline/internal/core/ports/driven"
	"github.com/ragline/ragline/internal/core/ports/driving"
	"github.com/ragline/ragline/internal/core/services"
	"github.com/ragline/ragline/internal/logger"
)

var (
	verboseFlag bool
	configFlag  string

	// cfg is populated by ensurePipeline.
	cfg config.Config

	// pipeline is the driving port all commands talk to. Tests
	// replace it with a mock.
	pipeline driving.Pipeline
)

var rootCmd = &cobra.Command{
	Use:   "ragline",
	Short: "Retrieval-augmented Q&A over a local document corpus",
	Long: `ragline ingests text and markdown files into a vector index and
answers questions against them, citing the passages it used.

Without any configuration it runs fully offline: deterministic hash
embeddings, an in-memory index and extractive answers. Point it at an
Ollama or OpenAI backend for semantic embeddings and generated answers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default ./ragline.toml, then ~/.ragline/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensurePipeline builds the pipeline from configuration on first use.
// Commands call it from their RunE so tests can pre-set a mock.
func ensurePipeline() error {
	if pipeline != nil {
		return nil
	}

	var err error
	cfg, err = config.Load(configFlag)
	if err != nil {
		return err
	}

	embedder, err := buildEmbedder(cfg.Embedding)
	if err != nil {
		return err
	}

	index, err := buildIndex(cfg, embedder)
	if err != nil {
		return err
	}

	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return err
	}

	svc, err := services.NewPipelineService(index, services.NewSynthesizer(llm), services.PipelineOptions{
		DefaultSourceDir: cfg.SourceDir,
		ChunkSize:        cfg.ChunkSize,
		ChunkOverlap:     cfg.ChunkOverlap,
		TopK:             cfg.TopK,
		HistoryLimit:     cfg.HistoryLimit,
	})
	if err != nil {
		return err
	}

	pipeline = svc
	return nil
}

// buildEmbedder constructs the configured embedding backend.
func buildEmbedder(ec config.EmbeddingConfig) (driven.EmbeddingService, error) {
	switch ec.Provider {
	case "hash", "":
		return embeddinghash.NewEmbeddingService(ec.Dimensions), nil
	case "ollama":
		return embeddingollama.NewEmbeddingService(embeddingollama.Config{
			BaseURL:    ec.BaseURL,
			Model:      ec.Model,
			Timeout:    ec.Timeout(),
			Dimensions: ec.Dimensions,
		}), nil
	case "openai":
		return embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey:  ec.APIKey,
			BaseURL: ec.BaseURL,
			Model:   ec.Model,
			Timeout: ec.Timeout(),
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", ec.Provider)
	}
}

// buildLLM constructs the configured generation backend, or nil for
// extractive-only operation.
func buildLLM(lc config.LLMConfig) (driven.LLMService, error) {
	switch lc.Provider {
	case "none", "":
		return nil, nil
	case "ollama":
		return llmollama.NewLLMService(llmollama.Config{
			BaseURL: lc.BaseURL,
			Model:   lc.Model,
			Timeout: lc.Timeout(),
		}), nil
	case "openai":
		return llmopenai.NewLLMService(llmopenai.Config{
			APIKey:  lc.APIKey,
			BaseURL: lc.BaseURL,
			Model:   lc.Model,
			Timeout: lc.Timeout(),
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", lc.Provider)
	}
}

// buildIndex constructs the configured vector index backend.
func buildIndex(cfg config.Config, embedder driven.EmbeddingService) (driven.VectorIndex, error) {
	switch cfg.Index.Backend {
	case "memory", "":
		return indexmemory.NewIndex(embedder), nil
	case "sqlite":
		return indexsqlite.NewIndex(cfg.DataDir, embedder)
	default:
		return nil, fmt.Errorf("unknown index backend %q", cfg.Index.Backend)
	}
}
