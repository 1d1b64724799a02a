package rag

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

// Retriever finds the chunks closest to a question.
type Retriever struct {
	embedder  Embedder
	store     storage.Store
	topK      int
	threshold float64
}

type RetrieverOption func(r *Retriever)

func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) {
		if k > 0 {
			r.topK = k
		}
	}
}

func WithThreshold(t float64) RetrieverOption {
	return func(r *Retriever) {
		r.threshold = t
	}
}

func NewRetriever(embedder Embedder, store storage.Store, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		embedder: embedder,
		store:    store,
		topK:     storage.DefaultTopK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retriever) TopK() int {
	return r.topK
}

// Retrieve embeds query and returns the best matching chunks.
func (r *Retriever) Retrieve(ctx context.Context, query string, filter map[string]string) ([]storage.Hit, error) {
	return r.RetrieveK(ctx, query, r.topK, filter)
}

// RetrieveK is Retrieve with an explicit result count.
func (r *Retriever) RetrieveK(ctx context.Context, query string, k int, filter map[string]string) ([]storage.Hit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.NewValidation("query must not be empty")
	}
	if k <= 0 {
		k = r.topK
	}
	vec, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.store.Search(ctx, storage.SearchRequest{
		Vector:    vec,
		TopK:      k,
		Threshold: r.threshold,
		Filter:    filter,
	})
}
