// Package tools exposes Go functions to chat models and runs the call loop.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/invopop/jsonschema"
)

// Handler runs a tool with the model supplied JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     Handler
}

func (t Tool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// New builds a tool whose parameter schema is reflected from A.
func New[A any](name, description string, fn func(ctx context.Context, args A) (any, error)) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  SchemaOf[A](),
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args A
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, apperr.NewValidationWrap(fmt.Sprintf("invalid arguments for %s", name), err)
				}
			}
			return fn(ctx, args)
		},
	}
}

// SchemaOf returns the JSON schema of A as a plain map.
func SchemaOf[A any]() map[string]any {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(new(A))
	schema.Version = ""
	schema.ID = ""

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("marshal json schema: %v", err))
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("decode json schema: %v", err))
	}
	return out
}
