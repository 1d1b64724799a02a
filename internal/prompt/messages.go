package prompt

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

// Example is one few-shot demonstration.
type Example struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// Builder assembles role-based message lists.
type Builder struct {
	messages []llm.Message
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) System(text string) *Builder {
	if text != "" {
		b.messages = append(b.messages, llm.System(text))
	}
	return b
}

func (b *Builder) User(text string) *Builder {
	b.messages = append(b.messages, llm.User(text))
	return b
}

func (b *Builder) Assistant(text string) *Builder {
	b.messages = append(b.messages, llm.Assistant(text))
	return b
}

// Examples appends each example as a user/assistant pair.
func (b *Builder) Examples(examples ...Example) *Builder {
	for _, ex := range examples {
		b.User(ex.Input).Assistant(ex.Output)
	}
	return b
}

// History replays prior turns.
func (b *Builder) History(messages ...llm.Message) *Builder {
	b.messages = append(b.messages, messages...)
	return b
}

func (b *Builder) Build() []llm.Message {
	out := make([]llm.Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// FewShot builds system + examples + the actual input.
func FewShot(system string, examples []Example, input string) []llm.Message {
	return NewBuilder().System(system).Examples(examples...).User(input).Build()
}
