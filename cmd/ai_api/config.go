package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/memory"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/factory"
	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ApiConfig struct {
	StorageConfig   factory.StorageConfig
	EmbeddingConfig embedding.Config
	ChatConfig      llm.Config
	MemoryConfig    memory.Config
	RAGConfig       rag.Config
	PromptLibrary   string
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/ai_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	embeddingCfg, err := embedding.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load embedding configuration from environment", "error", err)
		return nil, err
	}

	chatCfg, err := llm.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load chat model configuration from environment", "error", err)
		return nil, err
	}

	memoryCfg, err := memory.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load chat memory configuration from environment", "error", err)
		return nil, err
	}

	ragCfg, err := rag.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load RAG configuration from environment", "error", err)
		return nil, err
	}

	return &ApiConfig{
		StorageConfig:   *storageCfg,
		EmbeddingConfig: *embeddingCfg,
		ChatConfig:      *chatCfg,
		MemoryConfig:    *memoryCfg,
		RAGConfig:       *ragCfg,
		PromptLibrary:   os.Getenv("PROMPT_LIBRARY"),
	}, nil
}
