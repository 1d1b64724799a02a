// Package chat runs one-shot, templated, few-shot and remembered conversations
// against the configured chat models.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/memory"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
)

const DefaultHistoryWindow = 10

// Reply is an assistant answer with the model that produced it.
type Reply struct {
	Content string    `json:"content"`
	Model   string    `json:"model"`
	Light   bool      `json:"light_model,omitempty"`
	Usage   llm.Usage `json:"usage"`
}

type Service struct {
	models  *llm.Registry
	memory  memory.Store
	prompts *prompt.Library
	window  int
}

type Option func(*Service)

// WithHistoryWindow sets how many stored messages Converse replays.
func WithHistoryWindow(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.window = n
		}
	}
}

func WithPrompts(lib *prompt.Library) Option {
	return func(s *Service) {
		s.prompts = lib
	}
}

func NewService(models *llm.Registry, mem memory.Store, opts ...Option) *Service {
	s := &Service{
		models: models,
		memory: mem,
		window: DefaultHistoryWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prompts == nil {
		s.prompts = prompt.NewLibrary()
	}
	if s.memory == nil {
		s.memory = memory.NewInMemStore()
	}
	return s
}

func (s *Service) Ask(ctx context.Context, message string) (*Reply, error) {
	return s.AskWithSystem(ctx, "", message)
}

// AskWithSystem prefixes the question with a system instruction when one is given.
func (s *Service) AskWithSystem(ctx context.Context, system, message string) (*Reply, error) {
	if err := requireText(message); err != nil {
		return nil, err
	}
	msgs := prompt.NewBuilder().System(system).User(message).Build()
	return s.call(ctx, s.models.Default(), msgs, false)
}

// Converse replays the session window, asks, and stores both turns.
func (s *Service) Converse(ctx context.Context, session, message string) (*Reply, error) {
	if err := requireText(message); err != nil {
		return nil, err
	}
	history, err := s.memory.History(ctx, session, s.window)
	if err != nil {
		return nil, err
	}

	user := llm.User(message)
	msgs := prompt.NewBuilder().History(history...).History(user).Build()
	reply, err := s.call(ctx, s.models.Default(), msgs, false)
	if err != nil {
		return nil, err
	}

	if err := s.memory.Append(ctx, session, user, llm.Assistant(reply.Content)); err != nil {
		return nil, err
	}
	slog.Debug("Conversation turn stored", "session", session, "history", len(history))
	return reply, nil
}

func (s *Service) History(ctx context.Context, session string) ([]llm.Message, error) {
	return s.memory.History(ctx, session, 0)
}

func (s *Service) Clear(ctx context.Context, session string) error {
	return s.memory.Clear(ctx, session)
}

func (s *Service) Sessions(ctx context.Context) ([]string, error) {
	return s.memory.Sessions(ctx)
}

// FewShot answers input after showing the model worked examples.
func (s *Service) FewShot(ctx context.Context, system string, examples []prompt.Example, input string) (*Reply, error) {
	if err := requireText(input); err != nil {
		return nil, err
	}
	return s.call(ctx, s.models.Default(), prompt.FewShot(system, examples, input), false)
}

// Template renders a named prompt and sends it as the user message.
func (s *Service) Template(ctx context.Context, name string, params prompt.Params) (*Reply, error) {
	text, err := s.prompts.Render(name, params)
	if err != nil {
		return nil, err
	}
	return s.call(ctx, s.models.Default(), []llm.Message{llm.User(text)}, false)
}

// SmartChat routes short questions to the light model.
func (s *Service) SmartChat(ctx context.Context, message string) (*Reply, error) {
	if err := requireText(message); err != nil {
		return nil, err
	}
	sel := s.models.Selector().Select(message)
	return s.call(ctx, sel.Model, []llm.Message{llm.User(message)}, sel.Light)
}

// CostOptimized routes only short greetings to the light model.
func (s *Service) CostOptimized(ctx context.Context, message string) (*Reply, error) {
	if err := requireText(message); err != nil {
		return nil, err
	}
	sel := s.models.Selector().SelectCostOptimized(message)
	return s.call(ctx, sel.Model, []llm.Message{llm.User(message)}, sel.Light)
}

func (s *Service) call(ctx context.Context, model llm.ChatModel, msgs []llm.Message, light bool) (*Reply, error) {
	resp, err := model.Call(ctx, &llm.Request{Messages: msgs})
	if err != nil {
		return nil, err
	}
	return &Reply{
		Content: resp.Text(),
		Model:   model.Name(),
		Light:   light,
		Usage:   resp.Usage,
	}, nil
}

func requireText(message string) error {
	if strings.TrimSpace(message) == "" {
		return apperr.NewValidation("message must not be empty")
	}
	return nil
}
