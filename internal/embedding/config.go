package embedding

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
	ProviderHash   Provider = "hash"
)

const defaultHashDimensions = 256

type Config struct {
	Provider   Provider
	Model      string
	MaxLength  *int
	BaseURL    string
	APIKey     string
	Dimensions int
	KeepAlive  string
}

func LoadConfigFromEnv() (*Config, error) {
	provider := Provider(os.Getenv("EMBEDDING_PROVIDER"))
	if provider == "" {
		provider = ProviderOllama
	}

	cfg := &Config{
		Provider:   provider,
		Model:      os.Getenv("EMBEDDING_MODEL"),
		BaseURL:    os.Getenv("EMBEDDING_BASE_URL"),
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Dimensions: defaultHashDimensions,
		KeepAlive:  os.Getenv("EMBEDDING_KEEP_ALIVE"),
	}

	if env.Set("EMBEDDING_MAX_LENGTH") {
		val, err := env.Int("EMBEDDING_MAX_LENGTH", 0)
		if err != nil {
			return nil, err
		}
		cfg.MaxLength = &val
	}

	dims, err := env.Int("EMBEDDING_DIMENSIONS", cfg.Dimensions)
	if err != nil {
		return nil, err
	}
	cfg.Dimensions = dims

	switch provider {
	case ProviderOllama:
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:11434"
		}
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		if cfg.Model == "" {
			cfg.Model = "text-embedding-004"
		}
	case ProviderHash:
		if cfg.Model == "" {
			cfg.Model = "hash"
		}
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}

	return cfg, nil
}
