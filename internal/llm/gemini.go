package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"google.golang.org/genai"
)

type Gemini struct {
	client   *genai.Client
	model    string
	defaults defaults
}

func NewGemini(ctx context.Context, apiKey, model string, opts ...Option) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, defaults: newDefaults(opts)}, nil
}

func (g *Gemini) Name() string {
	return "gemini/" + g.model
}

func (g *Gemini) Call(ctx context.Context, req *Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	system, turns := splitSystem(req.Messages)
	contents, err := toGeminiContents(turns)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if t := g.defaults.temperatureFor(req); t != nil {
		cfg.Temperature = genai.Ptr(float32(*t))
	}
	if mt := g.defaults.maxTokensFor(req); mt > 0 {
		cfg.MaxOutputTokens = int32(mt)
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(req.Tools))
		for i, d := range req.Tools {
			decls[i] = &genai.FunctionDeclaration{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  toGeminiSchema(d.Parameters),
			}
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, apperr.NewUnavailable("gemini", err)
	}

	out := &Response{
		Message: Assistant(resp.Text()),
		Model:   g.Name(),
	}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	for _, fc := range resp.FunctionCalls() {
		args, err := json.Marshal(fc.Args)
		if err != nil {
			return nil, fmt.Errorf("encode function call args: %w", err)
		}
		id := fc.ID
		if id == "" {
			id = fc.Name
		}
		out.Message.ToolCalls = append(out.Message.ToolCalls, ToolCall{ID: id, Name: fc.Name, Arguments: string(args)})
	}

	return out, nil
}

func toGeminiContents(messages []Message) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(messages))
	lastWasTool := false
	for _, m := range messages {
		switch m.Role {
		case RoleAssistant:
			c := &genai.Content{Role: string(genai.RoleModel)}
			if m.Content != "" {
				c.Parts = append(c.Parts, genai.NewPartFromText(m.Content))
			}
			for _, tc := range m.ToolCalls {
				args := map[string]any{}
				if tc.Arguments != "" {
					if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
						return nil, fmt.Errorf("decode tool call %s arguments: %w", tc.Name, err)
					}
				}
				c.Parts = append(c.Parts, &genai.Part{FunctionCall: &genai.FunctionCall{ID: tc.ID, Name: tc.Name, Args: args}})
			}
			contents = append(contents, c)
		case RoleTool:
			part := &genai.Part{FunctionResponse: &genai.FunctionResponse{
				ID:       m.ToolCallID,
				Name:     m.Name,
				Response: map[string]any{"result": m.Content},
			}}
			// results answering one model turn share a single content
			if lastWasTool {
				last := contents[len(contents)-1]
				last.Parts = append(last.Parts, part)
			} else {
				contents = append(contents, &genai.Content{Role: string(genai.RoleUser), Parts: []*genai.Part{part}})
			}
		default:
			c := genai.NewContentFromText(m.Content, genai.RoleUser)
			for _, img := range m.Images {
				c.Parts = append(c.Parts, &genai.Part{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}})
			}
			contents = append(contents, c)
		}
		lastWasTool = m.Role == RoleTool
	}
	return contents, nil
}

// toGeminiSchema converts a JSON schema object into the subset genai understands.
func toGeminiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	s := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		s.Type = genai.Type(strings.ToUpper(t))
	}
	if d, ok := schema["description"].(string); ok {
		s.Description = d
	}
	if enum, ok := schema["enum"].([]string); ok {
		s.Enum = enum
	}
	if enum, ok := schema["enum"].([]any); ok {
		for _, e := range enum {
			s.Enum = append(s.Enum, fmt.Sprint(e))
		}
	}
	if req, ok := schema["required"].([]string); ok {
		s.Required = req
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			if pm, ok := p.(map[string]any); ok {
				s.Properties[name] = toGeminiSchema(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		s.Items = toGeminiSchema(items)
	}
	return s
}
