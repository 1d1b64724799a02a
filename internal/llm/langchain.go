package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// LangChain adapts any langchaingo llms.Model. NewOllama is the common entry point.
type LangChain struct {
	name     string
	provider string
	model    llms.Model
	defaults defaults
}

func NewOllama(baseURL, model string, opts ...Option) (*LangChain, error) {
	llm, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("create ollama model: %w", err)
	}
	return NewLangChain("ollama", model, llm, opts...), nil
}

func NewLangChain(provider, name string, model llms.Model, opts ...Option) *LangChain {
	return &LangChain{
		name:     name,
		provider: provider,
		model:    model,
		defaults: newDefaults(opts),
	}
}

func (l *LangChain) Name() string {
	return l.provider + "/" + l.name
}

func (l *LangChain) Call(ctx context.Context, req *Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var callOpts []llms.CallOption
	if t := l.defaults.temperatureFor(req); t != nil {
		callOpts = append(callOpts, llms.WithTemperature(*t))
	}
	if mt := l.defaults.maxTokensFor(req); mt > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(mt))
	}
	if len(req.Tools) > 0 {
		callOpts = append(callOpts, llms.WithTools(toLangChainTools(req.Tools)))
	}

	resp, err := l.model.GenerateContent(ctx, toLangChainMessages(req.Messages), callOpts...)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			return nil, apperr.NewUnavailable(l.provider, err)
		}
		return nil, fmt.Errorf("%s generate: %w", l.provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", l.provider)
	}

	choice := resp.Choices[0]
	out := &Response{
		Message:      Assistant(choice.Content),
		Model:        l.Name(),
		FinishReason: choice.StopReason,
	}
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		out.Message.ToolCalls = append(out.Message.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}
	out.Usage = usageFromGenerationInfo(choice.GenerationInfo)

	return out, nil
}

func toLangChainMessages(messages []Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, llms.TextParts(llms.ChatMessageTypeSystem, m.Content))
		case RoleAssistant:
			mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
			if m.Content != "" {
				mc.Parts = append(mc.Parts, llms.TextContent{Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				mc.Parts = append(mc.Parts, llms.ToolCall{
					ID:   tc.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
			out = append(out, mc)
		case RoleTool:
			out = append(out, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: m.ToolCallID,
					Name:       m.Name,
					Content:    m.Content,
				}},
			})
		default:
			mc := llms.TextParts(llms.ChatMessageTypeHuman, m.Content)
			for _, img := range m.Images {
				mc.Parts = append(mc.Parts, llms.BinaryPart(img.MIMEType, img.Data))
			}
			out = append(out, mc)
		}
	}
	return out
}

func toLangChainTools(defs []ToolDefinition) []llms.Tool {
	tools := make([]llms.Tool, len(defs))
	for i, d := range defs {
		tools[i] = llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		}
	}
	return tools
}

func usageFromGenerationInfo(info map[string]any) Usage {
	var u Usage
	if v, ok := info["PromptTokens"].(int); ok {
		u.InputTokens = v
	}
	if v, ok := info["CompletionTokens"].(int); ok {
		u.OutputTokens = v
	}
	return u
}
