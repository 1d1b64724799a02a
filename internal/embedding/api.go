package embedding

import (
	"context"
)

const defaultModel = "nomic-embed-text"

// Task tells providers that distinguish them whether a text is stored or searched for.
type Task string

const (
	TaskDocument Task = "RETRIEVAL_DOCUMENT"
	TaskQuery    Task = "RETRIEVAL_QUERY"
)

type Request struct {
	Model string `json:"model"`

	// Prompt is the textual prompt to embed.
	Prompt string `json:"prompt"`

	// Options lists model-specific options.
	Options map[string]any `json:"options,omitempty"`

	Task Task `json:"-"`
}

type Response struct {
	Embedding []float32 `json:"embedding"`
}

type BatchRequest struct {
	Model   string         `json:"model"`
	Prompts []string       `json:"prompts"`
	Options map[string]any `json:"options,omitempty"`
	Task    Task           `json:"-"`
}

type BatchResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Client turns text into vectors. Implementations talk to a model provider.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error)
}
