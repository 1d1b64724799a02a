// Package evaluation judges model answers, either by rule or by asking a model.
package evaluation

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
)

// Request is the answer under evaluation with the question and context behind it.
type Request struct {
	Question string   `json:"question"`
	Context  []string `json:"context,omitempty"`
	Answer   string   `json:"answer"`
}

type Result struct {
	Pass     bool    `json:"pass"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
}

type Evaluator interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
}

// NonBlank passes any answer that is not whitespace.
type NonBlank struct{}

func (NonBlank) Evaluate(_ context.Context, req Request) (Result, error) {
	return verdict(strings.TrimSpace(req.Answer) != "", ""), nil
}

// Relevancy asks a judge model whether the answer fits the question and context.
type Relevancy struct {
	judge   llm.ChatModel
	prompts *prompt.Library
}

func NewRelevancy(judge llm.ChatModel) *Relevancy {
	return &Relevancy{judge: judge, prompts: prompt.NewLibrary()}
}

func (r *Relevancy) Evaluate(ctx context.Context, req Request) (Result, error) {
	text, err := r.prompts.Render(prompt.Relevancy, prompt.Params{
		"question": req.Question,
		"answer":   req.Answer,
		"context":  strings.Join(req.Context, "\n"),
	})
	if err != nil {
		return Result{}, err
	}
	return ask(ctx, r.judge, text)
}

func ask(ctx context.Context, judge llm.ChatModel, text string) (Result, error) {
	answer, err := llm.Prompt(ctx, judge, text)
	if err != nil {
		return Result{}, err
	}
	return verdict(IsYes(answer), answer), nil
}

// IsYes reports whether a judge answered YES. Surrounding punctuation and case are ignored.
func IsYes(answer string) bool {
	fields := strings.Fields(strings.ToUpper(answer))
	if len(fields) == 0 {
		return false
	}
	return strings.Trim(fields[0], ".,!:;\"'*") == "YES"
}

func verdict(pass bool, feedback string) Result {
	r := Result{Pass: pass, Feedback: feedback}
	if pass {
		r.Score = 1
	}
	return r
}
