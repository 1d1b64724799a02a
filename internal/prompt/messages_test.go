package prompt

import (
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestFewShot(t *testing.T) {
	msgs := FewShot("You are a coding assistant.", []Example{
		{Input: "How do I join strings in Python?", Output: "Use + or str.join."},
		{Input: "How do I sort a list?", Output: "Use sorted() or list.sort()."},
	}, "How do I create a slice in Go?")

	assert.Equal(t, []llm.Message{
		llm.System("You are a coding assistant."),
		llm.User("How do I join strings in Python?"),
		llm.Assistant("Use + or str.join."),
		llm.User("How do I sort a list?"),
		llm.Assistant("Use sorted() or list.sort()."),
		llm.User("How do I create a slice in Go?"),
	}, msgs)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder().System("").History(llm.User("hi"), llm.Assistant("hello")).User("again")
	msgs := b.Build()

	assert.Equal(t, []llm.Message{llm.User("hi"), llm.Assistant("hello"), llm.User("again")}, msgs)

	msgs[0].Content = "changed"
	assert.Equal(t, "hi", b.Build()[0].Content)
}
