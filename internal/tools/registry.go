package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tools ...Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tools {
		if strings.TrimSpace(t.Name) == "" {
			return apperr.NewValidation("tool name must not be empty")
		}
		if t.Handler == nil {
			return apperr.NewValidation(fmt.Sprintf("tool %s has no handler", t.Name))
		}
		if _, ok := r.tools[t.Name]; ok {
			return apperr.NewValidation(fmt.Sprintf("tool %s is already registered", t.Name))
		}
		r.tools[t.Name] = t
	}
	return nil
}

func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	if !ok {
		return Tool{}, apperr.NewNotFound("tool", name)
	}
	return t, nil
}

// List returns tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Definitions() []llm.ToolDefinition {
	list := r.List()
	defs := make([]llm.ToolDefinition, len(list))
	for i, t := range list {
		defs[i] = t.Definition()
	}
	return defs
}

// Call runs the named tool and returns its result encoded as JSON.
func (r *Registry) Call(ctx context.Context, name, arguments string) (string, error) {
	t, err := r.Get(name)
	if err != nil {
		return "", err
	}

	slog.Debug("Calling tool", "tool", name, "arguments", arguments)
	result, err := t.Handler(ctx, json.RawMessage(arguments))
	if err != nil {
		return "", err
	}
	if s, ok := result.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode %s result: %w", name, err)
	}
	return string(raw), nil
}
