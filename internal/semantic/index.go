package semantic

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
)

// Query filters an Index search. Zero TopK means storage.DefaultTopK.
type Query struct {
	Text      string            `json:"query"`
	TopK      int               `json:"top_k"`
	Threshold float64           `json:"threshold"`
	Filter    map[string]string `json:"filter,omitempty"`
}

type SearchHit struct {
	ID             string            `json:"id"`
	Content        string            `json:"content"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Score          float64           `json:"score"`
	Percent        float64           `json:"score_percent"`
	Interpretation similarity.Level  `json:"interpretation"`
}

// Index embeds documents into a vector store and searches them by meaning.
type Index struct {
	embedder Embedder
	store    storage.Store
}

func NewIndex(embedder Embedder, store storage.Store) *Index {
	return &Index{embedder: embedder, store: store}
}

// AddDocument embeds and stores one text. An empty id is generated.
func (x *Index) AddDocument(ctx context.Context, id, text string, metadata map[string]string) (string, error) {
	ids, err := x.AddDocuments(ctx, []storage.Document{{ID: id, Content: text, Metadata: metadata}})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

func (x *Index) AddDocuments(ctx context.Context, docs []storage.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, apperr.NewValidation("at least one document is required")
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		if strings.TrimSpace(d.Content) == "" {
			return nil, apperr.NewValidation("document content must not be empty")
		}
		texts[i] = d.Content
	}

	vecs, err := x.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	toStore := make([]storage.Document, len(docs))
	for i, d := range docs {
		d.Embedding = vecs[i]
		toStore[i] = d
	}
	return x.store.Add(ctx, toStore)
}

func (x *Index) Search(ctx context.Context, q Query) ([]SearchHit, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, apperr.NewValidation("query must not be empty")
	}
	if err := checkThreshold(q.Threshold); err != nil {
		return nil, err
	}

	vec, err := x.embedder.EmbedQuery(ctx, q.Text)
	if err != nil {
		return nil, err
	}
	hits, err := x.store.Search(ctx, storage.SearchRequest{
		Vector:    vec,
		TopK:      q.TopK,
		Threshold: q.Threshold,
		Filter:    q.Filter,
	})
	if err != nil {
		return nil, err
	}

	out := make([]SearchHit, len(hits))
	for i, h := range hits {
		out[i] = SearchHit{
			ID:             h.Document.ID,
			Content:        h.Document.Content,
			Metadata:       h.Document.Metadata,
			Score:          h.Score,
			Percent:        similarity.Percent(h.Score),
			Interpretation: similarity.Interpret(h.Score),
		}
	}
	return out, nil
}

func (x *Index) Get(ctx context.Context, id string) (*storage.Document, error) {
	return x.store.Get(ctx, id)
}

func (x *Index) Documents(ctx context.Context, offset, limit int) ([]storage.Document, error) {
	return x.store.List(ctx, offset, limit)
}

func (x *Index) Count(ctx context.Context) (int, error) {
	return x.store.Count(ctx)
}

func (x *Index) Remove(ctx context.Context, id string) error {
	return x.store.Delete(ctx, id)
}

// Clear removes every document and returns how many were removed.
func (x *Index) Clear(ctx context.Context) (int, error) {
	docs, err := x.store.List(ctx, 0, 0)
	if err != nil {
		return 0, err
	}
	for _, d := range docs {
		if err := x.store.Delete(ctx, d.ID); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
