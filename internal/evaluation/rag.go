package evaluation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"golang.org/x/sync/errgroup"
)

const (
	relevanceWeight = 0.6
	factWeight      = 0.4

	defaultConcurrency = 4
)

// Asker answers a question from retrieved documents.
type Asker interface {
	AskWithSources(ctx context.Context, question string, filter map[string]string) (*rag.Answer, error)
}

type RAGResult struct {
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Documents []string `json:"retrieved_documents"`
	Relevance Result   `json:"relevance"`
	FactCheck Result   `json:"fact_check"`
	Quality   float64  `json:"overall_quality"`
}

// RAGEvaluator asks questions through a RAG service and grades every answer for
// relevance and factual support by the retrieved documents.
type RAGEvaluator struct {
	asker       Asker
	relevancy   Evaluator
	facts       Evaluator
	concurrency int
}

type RAGOption func(e *RAGEvaluator)

func WithConcurrency(n int) RAGOption {
	return func(e *RAGEvaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func NewRAGEvaluator(asker Asker, relevancy, facts Evaluator, opts ...RAGOption) *RAGEvaluator {
	e := &RAGEvaluator{
		asker:       asker,
		relevancy:   relevancy,
		facts:       facts,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *RAGEvaluator) Evaluate(ctx context.Context, question string) (*RAGResult, error) {
	answer, err := e.asker.AskWithSources(ctx, question, nil)
	if err != nil {
		return nil, err
	}

	docs := make([]string, len(answer.Sources))
	for i, s := range answer.Sources {
		docs[i] = s.Content
	}

	relevance, err := e.relevancy.Evaluate(ctx, Request{Question: question, Context: docs, Answer: answer.Answer})
	if err != nil {
		return nil, err
	}
	fact, err := e.facts.Evaluate(ctx, Request{
		Question: question,
		Context:  []string{strings.Join(docs, "\n")},
		Answer:   answer.Answer,
	})
	if err != nil {
		return nil, err
	}

	res := &RAGResult{
		Question:  question,
		Answer:    answer.Answer,
		Documents: docs,
		Relevance: relevance,
		FactCheck: fact,
		Quality:   QualityScore(relevance, fact),
	}
	slog.Debug("RAG answer evaluated", "question", question, "quality", res.Quality)
	return res, nil
}

// EvaluateMany evaluates questions concurrently. Results keep the input order.
func (e *RAGEvaluator) EvaluateMany(ctx context.Context, questions []string) ([]RAGResult, error) {
	out := make([]RAGResult, len(questions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, q := range questions {
		g.Go(func() error {
			res, err := e.Evaluate(gctx, q)
			if err != nil {
				return err
			}
			out[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// QualityScore weighs relevance at 0.6 and factual support at 0.4.
func QualityScore(relevance, fact Result) float64 {
	return relevanceWeight*relevance.Score + factWeight*fact.Score
}
