// Package memory keeps chat history per conversation session.
package memory

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

// Store appends and replays the messages of a session in insertion order.
type Store interface {
	Append(ctx context.Context, session string, messages ...llm.Message) error
	// History returns the last n messages, or all of them when n <= 0.
	History(ctx context.Context, session string, last int) ([]llm.Message, error)
	Clear(ctx context.Context, session string) error
	// Sessions lists session IDs in ascending order.
	Sessions(ctx context.Context) ([]string, error)
}

func validateSession(session string) error {
	if strings.TrimSpace(session) == "" {
		return apperr.NewValidation("session id must not be empty")
	}
	return nil
}

func tail(messages []llm.Message, last int) []llm.Message {
	if last > 0 && len(messages) > last {
		return messages[len(messages)-last:]
	}
	return messages
}
