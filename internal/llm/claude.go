package llm

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeDefaultMaxTokens = 1024

// Claude is an Anthropic chat model. User turns may carry images; tool definitions are rejected.
type Claude struct {
	client   anthropic.Client
	model    string
	defaults defaults
}

func NewClaude(apiKey, model string, opts ...Option) *Claude {
	return &Claude{
		client:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:    model,
		defaults: newDefaults(opts),
	}
}

func (c *Claude) Name() string {
	return "anthropic/" + c.model
}

func (c *Claude) Call(ctx context.Context, req *Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if len(req.Tools) > 0 {
		return nil, apperr.NewValidation("tool calling is not supported by the anthropic provider")
	}

	system, turns := splitSystem(req.Messages)

	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, m := range turns {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		case RoleTool:
			return nil, apperr.NewValidation("tool results are not supported by the anthropic provider")
		default:
			messages = append(messages, claudeUserMessage(m))
		}
	}

	maxTokens := c.defaults.maxTokensFor(req)
	if maxTokens <= 0 {
		maxTokens = claudeDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		Messages:  messages,
		MaxTokens: int64(maxTokens),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if t := c.defaults.temperatureFor(req); t != nil {
		params.Temperature = anthropic.Float(*t)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, apperr.NewUnavailable("anthropic", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &Response{
		Message:      Assistant(text.String()),
		Model:        c.Name(),
		FinishReason: string(msg.StopReason),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func claudeUserMessage(m Message) anthropic.MessageParam {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(m.Images)+1)
	for _, img := range m.Images {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MIMEType, base64.StdEncoding.EncodeToString(img.Data)))
	}
	blocks = append(blocks, anthropic.NewTextBlock(m.Content))
	return anthropic.NewUserMessage(blocks...)
}
