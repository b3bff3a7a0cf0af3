// Package config loads ragline's TOML configuration. Every field has
// a working default, so a missing config file yields a fully usable
// setup: hash embeddings, an in-memory index and extractive answers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultSourceDir    = "./knowledge"
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 150
	DefaultTopK         = 4
	DefaultHistoryLimit = 50
)

// Config is the full ragline configuration.
type Config struct {
	SourceDir    string `toml:"source_dir"`
	DataDir      string `toml:"data_dir"`
	ChunkSize    int    `toml:"chunk_size"`
	ChunkOverlap int    `toml:"chunk_overlap"`
	TopK         int    `toml:"top_k"`
	HistoryLimit int    `toml:"history_limit"`

	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
	Index     IndexConfig     `toml:"index"`
}

// EmbeddingConfig selects and tunes the embedding backend.
// Provider is one of "hash", "ollama" or "openai".
type EmbeddingConfig struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Dimensions     int    `toml:"dimensions"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	APIKey         string `toml:"-"` // from OPENAI_API_KEY, never the file
}

// Timeout returns the configured request timeout, or zero to let the
// adapter pick its default.
func (c EmbeddingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LLMConfig selects and tunes the generation backend.
// Provider is one of "none", "ollama" or "openai".
type LLMConfig struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	APIKey         string `toml:"-"`
}

// Timeout returns the configured request timeout, or zero to let the
// adapter pick its default.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// IndexConfig selects the vector index backend, "memory" or "sqlite".
type IndexConfig struct {
	Backend string `toml:"backend"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		SourceDir:    DefaultSourceDir,
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		TopK:         DefaultTopK,
		HistoryLimit: DefaultHistoryLimit,
		Embedding:    EmbeddingConfig{Provider: "hash"},
		LLM:          LLMConfig{Provider: "none"},
		Index:        IndexConfig{Backend: "memory"},
	}
}

// Load reads the TOML file at path and overlays it on the defaults.
// An empty path searches ./ragline.toml then ~/.ragline/config.toml;
// if neither exists the defaults are returned as-is. API keys are
// taken from the environment, never from the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	key := os.Getenv("OPENAI_API_KEY")
	cfg.Embedding.APIKey = key
	cfg.LLM.APIKey = key

	return cfg, nil
}

// findConfigFile returns the first existing default config path.
func findConfigFile() string {
	if _, err := os.Stat("ragline.toml"); err == nil {
		return "ragline.toml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".ragline", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults fills fields the file left at their zero value.
func applyDefaults(cfg *Config) {
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap == 0 {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	if cfg.TopK == 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "hash"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "none"
	}
	if cfg.Index.Backend == "" {
		cfg.Index.Backend = "memory"
	}
}
