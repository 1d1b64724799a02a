package llm

import (
	"context"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

// ChatModel is a chat completion backend.
type ChatModel interface {
	Name() string
	Call(ctx context.Context, req *Request) (*Response, error)
}

// Prompt sends a single user message and returns the answer text.
func Prompt(ctx context.Context, model ChatModel, text string) (string, error) {
	resp, err := model.Call(ctx, &Request{Messages: []Message{User(text)}})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func validate(req *Request) error {
	if req == nil || len(req.Messages) == 0 {
		return apperr.NewValidation("at least one message is required")
	}
	return nil
}
