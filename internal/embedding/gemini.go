package embedding

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"google.golang.org/genai"
)

// GeminiClient embeds text with the Gemini embedding models.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (gc *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, apperr.NewValidation("missing text to embed")
	}

	resp, err := gc.GenerateBatch(ctx, BatchRequest{Model: req.Model, Prompts: []string{req.Prompt}, Task: req.Task})
	if err != nil {
		return nil, err
	}
	return &Response{Embedding: resp.Embeddings[0]}, nil
}

func (gc *GeminiClient) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if len(req.Prompts) == 0 {
		return nil, apperr.NewValidation("missing prompts to embed")
	}
	if req.Model == "" {
		return nil, apperr.NewValidation("missing model name")
	}

	contents := make([]*genai.Content, len(req.Prompts))
	for i, p := range req.Prompts {
		contents[i] = genai.NewContentFromText(p, genai.RoleUser)
	}

	var cfg *genai.EmbedContentConfig
	if req.Task != "" {
		cfg = &genai.EmbedContentConfig{TaskType: string(req.Task)}
	}

	resp, err := gc.client.Models.EmbedContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return nil, apperr.NewUnavailable("gemini", err)
	}
	if len(resp.Embeddings) != len(req.Prompts) {
		return nil, fmt.Errorf("gemini returned %d embeddings for %d prompts", len(resp.Embeddings), len(req.Prompts))
	}

	out := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		out[i] = emb.Values
	}
	return &BatchResponse{Embeddings: out}, nil
}
