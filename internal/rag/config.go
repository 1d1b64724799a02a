package rag

import (
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

const DefaultDocumentsDir = "wiki-documents"

type Config struct {
	DocumentsDir string
	AutoLoad     bool
	Watch        bool
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	Threshold    float64
}

func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{
		DocumentsDir: env.String("RAG_DOCUMENTS_DIR", DefaultDocumentsDir),
		AutoLoad:     true,
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		TopK:         4,
	}

	var err error
	if cfg.AutoLoad, err = env.Bool("RAG_AUTO_LOAD", cfg.AutoLoad); err != nil {
		return nil, err
	}
	if cfg.Watch, err = env.Bool("RAG_WATCH", cfg.Watch); err != nil {
		return nil, err
	}
	if cfg.ChunkSize, err = env.Int("RAG_CHUNK_SIZE", cfg.ChunkSize); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = env.IntAtLeast("RAG_CHUNK_OVERLAP", cfg.ChunkOverlap, 0); err != nil {
		return nil, err
	}
	if cfg.TopK, err = env.Int("RAG_TOP_K", cfg.TopK); err != nil {
		return nil, err
	}

	if cfg.Threshold, err = env.Float("RAG_THRESHOLD", cfg.Threshold, 0, 1); err != nil {
		return nil, err
	}

	if cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("RAG_CHUNK_OVERLAP must be smaller than RAG_CHUNK_SIZE")
	}
	return cfg, nil
}

// RetrieverOptions converts the retrieval settings for NewRetriever and NewService.
func (c *Config) RetrieverOptions() []RetrieverOption {
	return []RetrieverOption{WithTopK(c.TopK), WithThreshold(c.Threshold)}
}
