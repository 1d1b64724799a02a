package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type Embedder struct {
	maxLength *int
	model     string
	instruct  string

	client Client
}

type EmbedderOption func(e *Embedder)

func NewEmbedder(client Client, opts ...EmbedderOption) *Embedder {
	base := &Embedder{
		model:  defaultModel,
		client: client,
	}

	for _, opt := range opts {
		opt(base)
	}

	return base
}

func WithModel(model string) EmbedderOption {
	return func(e *Embedder) {
		e.model = model
	}
}

// WithMaxLength truncates every returned vector to length dimensions.
func WithMaxLength(length int) EmbedderOption {
	return func(e *Embedder) {
		e.maxLength = &length
	}
}

// WithQueryInstruction prefixes queries with an instruct task, as expected by
// instruction-tuned embedding models (qwen3-embedding, e5).
func WithQueryInstruction(task string) EmbedderOption {
	return func(e *Embedder) {
		e.instruct = task
	}
}

func (e *Embedder) Model() string {
	return e.model
}

// EmbedText embeds a single document text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.NewValidation("text to embed must not be empty")
	}

	slog.Debug("Embedding text", "content_length", len(text), "model", e.model)

	resp, err := e.client.Generate(ctx, Request{
		Model:  e.model,
		Prompt: text,
		Task:   TaskDocument,
	})
	if err != nil {
		return nil, err
	}

	return e.truncate(resp.Embedding), nil
}

// EmbedTexts embeds texts in one batch call. The result is index-aligned with texts.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	prompts := make([]string, len(texts))
	for i, t := range texts {
		prompts[i] = strings.TrimSpace(t)
		if prompts[i] == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("text %d to embed must not be empty", i))
		}
	}

	slog.Debug("Bulk embedding texts", "count", len(texts))

	resp, err := e.client.GenerateBatch(ctx, BatchRequest{
		Model:   e.model,
		Prompts: prompts,
		Task:    TaskDocument,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	vecs := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		vecs[i] = e.truncate(emb)
	}

	slog.Debug("Generated bulk embeddings", "count", len(vecs), "model", e.model)
	return vecs, nil
}

// EmbedQuery embeds a search query, wrapped with the query instruction when one is set.
func (e *Embedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.NewValidation("query must not be empty")
	}

	prompt := query
	if e.instruct != "" {
		prompt = wrapWithInstruct(e.instruct, query)
		slog.Debug("embedding query with instruct", "task", e.instruct, "query", query)
	}

	resp, err := e.client.Generate(ctx, Request{
		Model:  e.model,
		Prompt: prompt,
		Task:   TaskQuery,
	})
	if err != nil {
		return nil, err
	}

	return e.truncate(resp.Embedding), nil
}

func (e *Embedder) truncate(v []float32) []float32 {
	if e.maxLength != nil && len(v) > *e.maxLength {
		return v[:*e.maxLength]
	}
	return v
}

func wrapWithInstruct(task, query string) string {
	return fmt.Sprintf("Instruct: %s\nQuery:%s", task, query)
}
