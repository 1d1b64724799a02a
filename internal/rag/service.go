package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

const noContext = "No relevant documents were found."

// Source is a retrieved chunk that backed an answer.
type Source struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Score    float64           `json:"score"`
}

type Answer struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []Source `json:"sources"`
	Model    string   `json:"model"`
}

// Service answers questions from retrieved context.
type Service struct {
	retriever *Retriever
	model     llm.ChatModel
	prompts   *prompt.Library
	loader    *Loader
	embedder  Embedder
	store     storage.Store
}

func NewService(embedder Embedder, store storage.Store, model llm.ChatModel, opts ...RetrieverOption) *Service {
	return &Service{
		retriever: NewRetriever(embedder, store, opts...),
		model:     model,
		prompts:   prompt.NewLibrary(),
		loader:    NewLoader(),
		embedder:  embedder,
		store:     store,
	}
}

func (s *Service) Retriever() *Retriever {
	return s.retriever
}

func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	a, err := s.AskWithSources(ctx, question, nil)
	if err != nil {
		return "", err
	}
	return a.Answer, nil
}

// AskWithSources retrieves context for question, asks the model and returns the
// answer together with the chunks it was given. An empty retrieval still reaches
// the model, told that nothing relevant was found.
func (s *Service) AskWithSources(ctx context.Context, question string, filter map[string]string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperr.NewValidation("question must not be empty")
	}
	hits, err := s.retriever.Retrieve(ctx, question, filter)
	if err != nil {
		return nil, err
	}

	text, err := s.prompts.Render(prompt.RAGAnswer, prompt.Params{
		"context":  FormatContext(hits),
		"question": question,
	})
	if err != nil {
		return nil, err
	}
	resp, err := s.model.Call(ctx, &llm.Request{Messages: []llm.Message{llm.User(text)}})
	if err != nil {
		return nil, err
	}

	sources := make([]Source, len(hits))
	for i, h := range hits {
		sources[i] = Source{
			ID:       h.Document.ID,
			Content:  h.Document.Content,
			Metadata: h.Document.Metadata,
			Score:    h.Score,
		}
	}
	return &Answer{
		Question: question,
		Answer:   resp.Text(),
		Sources:  sources,
		Model:    s.model.Name(),
	}, nil
}

// Ingest chunks, embeds and stores raw texts. Metadata is copied onto every chunk.
func (s *Service) Ingest(ctx context.Context, texts []string, metadata map[string]string) ([]string, error) {
	if len(texts) == 0 {
		return nil, apperr.NewValidation("at least one document is required")
	}

	var docs []storage.Document
	var contents []string
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("document %d is empty", i))
		}
		chunks, err := s.loader.SplitText(t)
		if err != nil {
			return nil, err
		}
		for j, c := range chunks {
			md := storage.CloneMetadata(metadata)
			if md == nil {
				md = make(map[string]string)
			}
			md["document"] = fmt.Sprint(i)
			md[MetaChunk] = fmt.Sprint(j)
			docs = append(docs, storage.Document{Content: c, Metadata: md})
			contents = append(contents, c)
		}
	}

	vecs, err := s.embedder.EmbedTexts(ctx, contents)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Embedding = vecs[i]
	}
	return s.store.Add(ctx, docs)
}

// FormatContext renders hits as numbered documents separated by blank lines.
func FormatContext(hits []storage.Hit) string {
	if len(hits) == 0 {
		return noContext
	}
	parts := make([]string, len(hits))
	for i, h := range hits {
		source := h.Document.Metadata[MetaSource]
		if source == "" {
			source = h.Document.ID
		}
		parts[i] = fmt.Sprintf("[Document %d: %s]\n%s", i+1, source, h.Document.Content)
	}
	return strings.Join(parts, "\n\n")
}
