package llm

import "strings"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a function invocation requested by the model. Arguments is a JSON object.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Image is inline binary image data attached to a user message.
type Image struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

type Message struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	Images    []Image    `json:"images,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID and Name identify the call a RoleTool message answers.
	ToolCallID string `json:"tool_call_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

func System(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

func User(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// UserWithImages is a user turn carrying text and images; the text comes first.
func UserWithImages(text string, images ...Image) Message {
	return Message{Role: RoleUser, Content: text, Images: images}
}

func Assistant(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

func ToolResult(call ToolCall, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: call.ID, Name: call.Name}
}

// ToolDefinition describes a callable function. Parameters is a JSON schema object.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type Request struct {
	Messages    []Message
	Tools       []ToolDefinition
	Temperature *float64
	MaxTokens   int
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type Response struct {
	Message      Message `json:"message"`
	Model        string  `json:"model"`
	FinishReason string  `json:"finish_reason,omitempty"`
	Usage        Usage   `json:"usage"`
}

// Text returns the trimmed assistant text.
func (r *Response) Text() string {
	return strings.TrimSpace(r.Message.Content)
}

// splitSystem joins every system message into one instruction and returns the rest.
// Gemini and Claude take the system prompt outside the turn list.
func splitSystem(messages []Message) (string, []Message) {
	var system []string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n\n"), rest
}
