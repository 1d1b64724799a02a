package evaluation

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
)

// FactChecking asks a judge model whether a claim is supported by a document.
type FactChecking struct {
	judge   llm.ChatModel
	prompts *prompt.Library
}

func NewFactChecking(judge llm.ChatModel) *FactChecking {
	return &FactChecking{judge: judge, prompts: prompt.NewLibrary()}
}

// Evaluate checks the answer against the joined context, or against the question
// when no context is given.
func (f *FactChecking) Evaluate(ctx context.Context, req Request) (Result, error) {
	document := strings.Join(req.Context, "\n")
	if strings.TrimSpace(document) == "" {
		document = req.Question
	}
	return f.Check(ctx, document, req.Answer)
}

func (f *FactChecking) Check(ctx context.Context, document, claim string) (Result, error) {
	if strings.TrimSpace(document) == "" || strings.TrimSpace(claim) == "" {
		return Result{}, apperr.NewValidation("document and claim must not be empty")
	}
	text, err := f.prompts.Render(prompt.FactCheck, prompt.Params{
		"document": document,
		"claim":    claim,
	})
	if err != nil {
		return Result{}, err
	}
	return ask(ctx, f.judge, text)
}

type Hallucination struct {
	Hallucinated bool   `json:"hallucinated"`
	Source       string `json:"source"`
	Answer       string `json:"answer"`
}

// DetectHallucination flags an answer the source document does not support.
func (f *FactChecking) DetectHallucination(ctx context.Context, source, answer string) (*Hallucination, error) {
	res, err := f.Check(ctx, source, answer)
	if err != nil {
		return nil, err
	}
	return &Hallucination{Hallucinated: !res.Pass, Source: source, Answer: answer}, nil
}

// CheckClaims checks every claim against one document, in order.
func (f *FactChecking) CheckClaims(ctx context.Context, document string, claims []string) ([]bool, error) {
	out := make([]bool, len(claims))
	for i, c := range claims {
		res, err := f.Check(ctx, document, c)
		if err != nil {
			return nil, err
		}
		out[i] = res.Pass
	}
	return out, nil
}

// CheckAgainstAny reports whether any document supports the claim. It stops at the first match.
func (f *FactChecking) CheckAgainstAny(ctx context.Context, documents []string, claim string) (bool, error) {
	for _, d := range documents {
		res, err := f.Check(ctx, d, claim)
		if err != nil {
			return false, err
		}
		if res.Pass {
			return true, nil
		}
	}
	return false, nil
}
