package llm

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
	ProviderMock      Provider = "mock"
)

// ModelConfig selects one chat model.
type ModelConfig struct {
	Provider Provider
	Model    string
	BaseURL  string
	APIKey   string
}

type Config struct {
	Primary ModelConfig
	// Light is the cheaper model picked for short prompts. Nil when not configured.
	Light       *ModelConfig
	Temperature *float64
	MaxTokens   int
	// Image is the text-to-image model. Nil when IMAGE_PROVIDER is unset.
	Image *ModelConfig
}

var defaultModels = map[Provider]string{
	ProviderOllama:    "llama3.2",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderMock:      "mock",
}

func LoadConfigFromEnv() (*Config, error) {
	primary, err := modelConfig(os.Getenv("CHAT_PROVIDER"), os.Getenv("CHAT_MODEL"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{Primary: *primary}

	if fp := os.Getenv("CHAT_FALLBACK_PROVIDER"); fp != "" {
		light, err := modelConfig(fp, os.Getenv("CHAT_FALLBACK_MODEL"))
		if err != nil {
			return nil, fmt.Errorf("fallback model: %w", err)
		}
		cfg.Light = light
	}

	if env.Set("CHAT_TEMPERATURE") {
		val, err := env.Float("CHAT_TEMPERATURE", 0, 0, 2)
		if err != nil {
			return nil, err
		}
		cfg.Temperature = &val
	}

	if cfg.MaxTokens, err = env.Int("CHAT_MAX_TOKENS", 0); err != nil {
		return nil, err
	}

	if ip := os.Getenv("IMAGE_PROVIDER"); ip != "" {
		if cfg.Image, err = imageModelConfig(ip, os.Getenv("IMAGE_MODEL")); err != nil {
			return nil, fmt.Errorf("image model: %w", err)
		}
	}

	return cfg, nil
}

func modelConfig(provider, model string) (*ModelConfig, error) {
	p := Provider(provider)
	if p == "" {
		p = ProviderOllama
	}

	def, ok := defaultModels[p]
	if !ok {
		return nil, fmt.Errorf("unsupported chat provider: %s", provider)
	}
	if model == "" {
		model = def
	}

	mc := &ModelConfig{Provider: p, Model: model}
	switch p {
	case ProviderOllama:
		mc.BaseURL = os.Getenv("CHAT_BASE_URL")
		if mc.BaseURL == "" {
			mc.BaseURL = "http://localhost:11434"
		}
	case ProviderGemini:
		mc.APIKey = os.Getenv("GEMINI_API_KEY")
		if mc.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case ProviderAnthropic:
		mc.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if mc.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	}
	return mc, nil
}

func imageModelConfig(provider, model string) (*ModelConfig, error) {
	switch p := Provider(provider); p {
	case ProviderGemini:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		if model == "" {
			model = defaultImagenModel
		}
		return &ModelConfig{Provider: p, Model: model, APIKey: key}, nil
	case ProviderMock:
		return &ModelConfig{Provider: p, Model: model}, nil
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", provider)
	}
}
