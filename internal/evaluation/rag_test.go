package evaluation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRAG(t *testing.T) *rag.Service {
	t.Helper()
	model := llm.NewMock("rag")
	model.Fallback = func(req *llm.Request) string {
		if strings.Contains(req.Messages[0].Content, "Paris") {
			return "Paris is the capital of France."
		}
		return "I don't know."
	}
	svc := rag.NewService(embedding.NewEmbedder(embedding.NewHashClient(128)), in_mem.NewStore(), model, rag.WithTopK(1))
	_, err := svc.Ingest(context.Background(), []string{
		"The capital of France is Paris.",
		"Kotlin is developed by JetBrains.",
	}, nil)
	require.NoError(t, err)
	return svc
}

func parisJudge() *llm.Mock {
	judge := llm.NewMock("judge")
	judge.Fallback = func(req *llm.Request) string {
		if strings.Contains(req.Messages[0].Content, "Paris is the capital") {
			return "YES"
		}
		return "NO"
	}
	return judge
}

func TestRAGEvaluator_Evaluate(t *testing.T) {
	judge := parisJudge()
	eval := NewRAGEvaluator(newRAG(t), NewRelevancy(judge), NewFactChecking(judge))

	res, err := eval.Evaluate(context.Background(), "What is the capital of France?")
	require.NoError(t, err)
	assert.Equal(t, "Paris is the capital of France.", res.Answer)
	require.Len(t, res.Documents, 1)
	assert.Contains(t, res.Documents[0], "Paris")
	assert.True(t, res.Relevance.Pass)
	assert.True(t, res.FactCheck.Pass)
	assert.InDelta(t, 1.0, res.Quality, 1e-9)
}

func TestRAGEvaluator_EvaluateMany(t *testing.T) {
	judge := parisJudge()
	eval := NewRAGEvaluator(newRAG(t), NewRelevancy(judge), NewFactChecking(judge), WithConcurrency(2))

	questions := []string{"What is the capital of France?", "Who develops Kotlin?", "Capital of France?"}
	results, err := eval.EvaluateMany(context.Background(), questions)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, q := range questions {
		assert.Equal(t, q, results[i].Question)
	}
	assert.InDelta(t, 0.0, results[1].Quality, 1e-9)
}

type failingAsker struct{}

func (failingAsker) AskWithSources(context.Context, string, map[string]string) (*rag.Answer, error) {
	return nil, errors.New("model down")
}

func TestRAGEvaluator_EvaluateManyError(t *testing.T) {
	eval := NewRAGEvaluator(failingAsker{}, NonBlank{}, NonBlank{})
	_, err := eval.EvaluateMany(context.Background(), []string{"a", "b"})
	assert.EqualError(t, err, "model down")
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name            string
		relevance, fact Result
		want            float64
	}{
		{"both pass", Result{Score: 1}, Result{Score: 1}, 1.0},
		{"relevant only", Result{Score: 1}, Result{}, 0.6},
		{"facts only", Result{}, Result{Score: 1}, 0.4},
		{"neither", Result{}, Result{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, QualityScore(tt.relevance, tt.fact), 1e-9)
		})
	}
}
