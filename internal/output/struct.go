package output

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/invopop/jsonschema"
)

// StructParser asks for and decodes a JSON object shaped like T.
type StructParser[T any] struct {
	schema string
}

func NewStructParser[T any]() *StructParser[T] {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(new(T))
	schema.Version = ""
	schema.ID = ""

	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		// a schema built by reflection always marshals
		panic(fmt.Sprintf("marshal json schema: %v", err))
	}
	return &StructParser[T]{schema: string(raw)}
}

// Schema returns the JSON schema of T.
func (p *StructParser[T]) Schema() string {
	return p.schema
}

// Format is the instruction appended to prompts.
func (p *StructParser[T]) Format() string {
	return "Your response must be a single JSON object that conforms to the JSON schema below.\n" +
		"Do not include explanations, markdown code fences or comments.\n\n" + p.schema
}

func (p *StructParser[T]) Parse(text string) (T, error) {
	var out T

	cleaned := ExtractJSONObject(CleanJSON(text))
	if cleaned == "" {
		return out, apperr.NewValidation("model returned an empty response")
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return out, apperr.NewValidationWrap("failed to parse model output as JSON", err)
	}
	return out, nil
}
