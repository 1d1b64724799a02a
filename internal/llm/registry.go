package llm

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

const (
	DefaultModelKey = "default"
	LightModelKey   = "light"
)

// Registry holds named chat models.
type Registry struct {
	mu     sync.RWMutex
	models map[string]ChatModel
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]ChatModel)}
}

func (r *Registry) Register(key string, model ChatModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[key] = model
}

func (r *Registry) Get(key string) (ChatModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key == "" {
		key = DefaultModelKey
	}
	m, ok := r.models[key]
	if !ok {
		return nil, apperr.NewNotFound("chat model", key)
	}
	return m, nil
}

// Default returns the primary model. It panics when nothing was registered under DefaultModelKey.
func (r *Registry) Default() ChatModel {
	m, err := r.Get(DefaultModelKey)
	if err != nil {
		panic(err)
	}
	return m
}

// Light returns the light model or nil.
func (r *Registry) Light() ChatModel {
	m, err := r.Get(LightModelKey)
	if err != nil {
		return nil
	}
	return m
}

// Keys lists registered model keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.models))
	for k := range r.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) Selector() *Selector {
	return NewSelector(r.Default(), r.Light())
}

// New builds a single chat model.
func New(ctx context.Context, mc ModelConfig, opts ...Option) (ChatModel, error) {
	switch mc.Provider {
	case ProviderOllama, "":
		return NewOllama(mc.BaseURL, mc.Model, opts...)
	case ProviderGemini:
		return NewGemini(ctx, mc.APIKey, mc.Model, opts...)
	case ProviderAnthropic:
		return NewClaude(mc.APIKey, mc.Model, opts...), nil
	case ProviderMock:
		return NewMock(mc.Model), nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", mc.Provider)
	}
}

// NewFromConfig registers the primary model and, when configured, the light model.
func NewFromConfig(ctx context.Context, cfg *Config) (*Registry, error) {
	var opts []Option
	if cfg.Temperature != nil {
		opts = append(opts, WithTemperature(*cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, WithMaxTokens(cfg.MaxTokens))
	}

	reg := NewRegistry()

	primary, err := New(ctx, cfg.Primary, opts...)
	if err != nil {
		return nil, fmt.Errorf("primary chat model: %w", err)
	}
	reg.Register(DefaultModelKey, primary)

	if cfg.Light != nil {
		light, err := New(ctx, *cfg.Light, opts...)
		if err != nil {
			return nil, fmt.Errorf("light chat model: %w", err)
		}
		reg.Register(LightModelKey, light)
	}

	return reg, nil
}
