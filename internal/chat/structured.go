package chat

import (
	"context"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/output"
)

// ListReply is a model answer parsed into items. Raw keeps the unparsed text.
type ListReply struct {
	Items []string `json:"items"`
	Raw   string   `json:"raw"`
	Model string   `json:"model"`
}

type MapReply struct {
	Values map[string]string `json:"values"`
	Raw    string            `json:"raw"`
	Model  string            `json:"model"`
}

// AskList appends the list format instruction to message and parses the answer.
func (s *Service) AskList(ctx context.Context, message string, parser *output.ListParser) (*ListReply, error) {
	if parser == nil {
		parser = output.NewListParser("")
	}
	reply, err := s.formatted(ctx, message, parser.Format())
	if err != nil {
		return nil, err
	}
	return &ListReply{Items: parser.Parse(reply.Content), Raw: reply.Content, Model: reply.Model}, nil
}

// AskMap appends the key/value format instruction to message and parses the answer.
func (s *Service) AskMap(ctx context.Context, message string, parser *output.MapParser) (*MapReply, error) {
	if parser == nil {
		parser = output.NewMapParser("")
	}
	reply, err := s.formatted(ctx, message, parser.Format())
	if err != nil {
		return nil, err
	}
	return &MapReply{Values: parser.Parse(reply.Content), Raw: reply.Content, Model: reply.Model}, nil
}

func (s *Service) formatted(ctx context.Context, message, format string) (*Reply, error) {
	if err := requireText(message); err != nil {
		return nil, err
	}
	return s.call(ctx, s.models.Default(), []llm.Message{llm.User(message + "\n\n" + format)}, false)
}
