package embedding

import (
	"context"
	"fmt"
)

// NewClient builds the provider client named by cfg.
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		var opts []OllamaConfig
		if cfg.KeepAlive != "" {
			opts = append(opts, WithKeepAlive(cfg.KeepAlive))
		}
		return NewOllamaClient(cfg.BaseURL, opts...)
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey)
	case ProviderHash:
		return NewHashClient(cfg.Dimensions), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}

// NewFromConfig builds a client and wraps it in an Embedder configured from cfg.
func NewFromConfig(ctx context.Context, cfg *Config) (*Embedder, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []EmbedderOption
	if cfg.Model != "" {
		opts = append(opts, WithModel(cfg.Model))
	}
	if cfg.MaxLength != nil {
		opts = append(opts, WithMaxLength(*cfg.MaxLength))
	}

	return NewEmbedder(client, opts...), nil
}
