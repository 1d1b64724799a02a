package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGeminiSchema(t *testing.T) {
	schema := toGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type":        "string",
				"description": "operation to apply",
				"enum":        []any{"add", "subtract"},
			},
			"values": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []string{"operation"},
	})

	require.NotNil(t, schema)
	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"operation"}, schema.Required)
	assert.Equal(t, genai.TypeString, schema.Properties["operation"].Type)
	assert.Equal(t, []string{"add", "subtract"}, schema.Properties["operation"].Enum)
	assert.Equal(t, genai.TypeNumber, schema.Properties["values"].Items.Type)

	assert.Nil(t, toGeminiSchema(nil))
}

func TestToGeminiContents(t *testing.T) {
	call := ToolCall{ID: "c1", Name: "weather", Arguments: `{"city":"Seoul"}`}
	contents, err := toGeminiContents([]Message{
		User("weather in Seoul?"),
		{Role: RoleAssistant, ToolCalls: []ToolCall{call}},
		ToolResult(call, "15.5C"),
	})
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, map[string]any{"city": "Seoul"}, contents[1].Parts[0].FunctionCall.Args)
	assert.Equal(t, "weather", contents[2].Parts[0].FunctionResponse.Name)
	assert.Equal(t, map[string]any{"result": "15.5C"}, contents[2].Parts[0].FunctionResponse.Response)

	_, err = toGeminiContents([]Message{{Role: RoleAssistant, ToolCalls: []ToolCall{{Name: "x", Arguments: "{"}}}})
	assert.Error(t, err)
}

func TestToGeminiContents_ParallelToolResults(t *testing.T) {
	seoul := ToolCall{ID: "c1", Name: "weather", Arguments: `{"city":"Seoul"}`}
	paris := ToolCall{ID: "c2", Name: "weather", Arguments: `{"city":"Paris"}`}

	contents, err := toGeminiContents([]Message{
		User("weather in Seoul and Paris?"),
		{Role: RoleAssistant, ToolCalls: []ToolCall{seoul, paris}},
		ToolResult(seoul, "15.5C"),
		ToolResult(paris, "9C"),
		Assistant("Seoul is warmer."),
		User("and tomorrow?"),
		{Role: RoleAssistant, ToolCalls: []ToolCall{seoul}},
		ToolResult(seoul, "17C"),
	})
	require.NoError(t, err)
	require.Len(t, contents, 6)

	tests := []struct {
		name    string
		content *genai.Content
		wantIDs []string
	}{
		{name: "two results in one turn", content: contents[2], wantIDs: []string{"c1", "c2"}},
		{name: "single result", content: contents[5], wantIDs: []string{"c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(genai.RoleUser), tt.content.Role)
			ids := make([]string, len(tt.content.Parts))
			for i, p := range tt.content.Parts {
				require.NotNil(t, p.FunctionResponse)
				ids[i] = p.FunctionResponse.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestToGeminiContents_Images(t *testing.T) {
	png := Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	contents, err := toGeminiContents([]Message{UserWithImages("describe this", png)})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)

	assert.Equal(t, "describe this", contents[0].Parts[0].Text)
	require.NotNil(t, contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/png", contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, png.Data, contents[0].Parts[1].InlineData.Data)
}
