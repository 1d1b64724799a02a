package evaluation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"YES", true},
		{"yes.", true},
		{"**Yes** the answer is fine", true},
		{"NO", false},
		{"Not sure, yes maybe", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, IsYes(tt.answer))
		})
	}
}

func TestNonBlank(t *testing.T) {
	res, err := NonBlank{}.Evaluate(context.Background(), Request{Answer: "something"})
	require.NoError(t, err)
	assert.True(t, res.Pass)
	assert.Equal(t, 1.0, res.Score)

	res, err = NonBlank{}.Evaluate(context.Background(), Request{Answer: " \n"})
	require.NoError(t, err)
	assert.False(t, res.Pass)
	assert.Zero(t, res.Score)
}

func TestRelevancy(t *testing.T) {
	judge := llm.NewMock("judge").EnqueueText("YES", "NO")
	eval := NewRelevancy(judge)
	ctx := context.Background()

	res, err := eval.Evaluate(ctx, Request{
		Question: "What is RAG?",
		Context:  []string{"RAG retrieves documents.", "It grounds answers."},
		Answer:   "Retrieval augmented generation.",
	})
	require.NoError(t, err)
	assert.True(t, res.Pass)
	assert.Equal(t, "YES", res.Feedback)

	res, err = eval.Evaluate(ctx, Request{Question: "What is RAG?", Answer: "A cat."})
	require.NoError(t, err)
	assert.False(t, res.Pass)

	prompt := judge.Requests()[0].Messages[0].Content
	assert.Contains(t, prompt, "What is RAG?")
	assert.Contains(t, prompt, "RAG retrieves documents.\nIt grounds answers.")
	assert.Contains(t, prompt, "Retrieval augmented generation.")
}

func TestFactChecking(t *testing.T) {
	ctx := context.Background()
	judge := llm.NewMock("judge")
	judge.Fallback = func(req *llm.Request) string {
		if strings.Contains(req.Messages[0].Content, "2014") {
			return "YES"
		}
		return "NO"
	}
	fc := NewFactChecking(judge)
	doc := "Spring Boot was released in 2014."

	res, err := fc.Check(ctx, doc, "Spring Boot came out in 2014.")
	require.NoError(t, err)
	assert.True(t, res.Pass)

	h, err := fc.DetectHallucination(ctx, "Kotlin is made by JetBrains.", "Kotlin is made by Google.")
	require.NoError(t, err)
	assert.True(t, h.Hallucinated)

	claims, err := fc.CheckClaims(ctx, "Kotlin is made by JetBrains.", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, claims)

	supported, err := fc.CheckAgainstAny(ctx, []string{"Kotlin is made by JetBrains.", doc}, "released then")
	require.NoError(t, err)
	assert.True(t, supported)

	res, err = fc.Evaluate(ctx, Request{Question: doc, Answer: "yes"})
	require.NoError(t, err)
	assert.True(t, res.Pass)

	_, err = fc.Check(ctx, "", "claim")
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
