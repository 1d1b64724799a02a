package router

import (
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/chat"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/memory"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChat(t *testing.T) (*chat.Service, *prompt.Library, *llm.Mock, *llm.Mock) {
	t.Helper()
	primary := llm.NewMock("primary")
	light := llm.NewMock("light")
	reg := llm.NewRegistry()
	reg.Register(llm.DefaultModelKey, primary)
	reg.Register(llm.LightModelKey, light)
	lib := prompt.NewLibrary()
	return chat.NewService(reg, memory.NewInMemStore(), chat.WithPrompts(lib)), lib, primary, light
}

func TestChatRouter(t *testing.T) {
	svc, _, primary, light := newChat(t)
	e := newEcho()
	NewChatRouter(e, svc).Bind()

	t.Run("ask with system", func(t *testing.T) {
		primary.EnqueueText("Paris")
		rec := do(t, e, http.MethodPost, "/chat", dto.ChatRequest{Message: "Capital of France?", System: "Be brief."})
		requireStatus(t, rec, http.StatusOK)
		reply := decode[chat.Reply](t, rec)
		assert.Equal(t, "Paris", reply.Content)
		assert.Equal(t, "mock/primary", reply.Model)
	})

	t.Run("blank message", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/chat", dto.ChatRequest{Message: "  "})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("conversation", func(t *testing.T) {
		primary.EnqueueText("Hi Kim.", "You are Kim.")
		requireStatus(t, do(t, e, http.MethodPost, "/chat/sessions/s1", dto.ChatRequest{Message: "I am Kim."}), http.StatusOK)
		requireStatus(t, do(t, e, http.MethodPost, "/chat/sessions/s1", dto.ChatRequest{Message: "Who am I?"}), http.StatusOK)

		rec := do(t, e, http.MethodGet, "/chat/sessions/s1", nil)
		requireStatus(t, rec, http.StatusOK)
		history := decode[[]llm.Message](t, rec)
		require.Len(t, history, 4)
		assert.Equal(t, "You are Kim.", history[3].Content)

		rec = do(t, e, http.MethodGet, "/chat/sessions", nil)
		assert.Equal(t, []string{"s1"}, decode[dto.SessionsResponse](t, rec).Sessions)

		requireStatus(t, do(t, e, http.MethodDelete, "/chat/sessions/s1", nil), http.StatusNoContent)
		rec = do(t, e, http.MethodGet, "/chat/sessions/s1", nil)
		assert.Empty(t, decode[[]llm.Message](t, rec))
	})

	t.Run("smart routes short questions to light model", func(t *testing.T) {
		light.EnqueueText("4")
		rec := do(t, e, http.MethodPost, "/chat/smart", dto.ChatRequest{Message: "2+2?"})
		requireStatus(t, rec, http.StatusOK)
		reply := decode[chat.Reply](t, rec)
		assert.True(t, reply.Light)
		assert.Equal(t, "mock/light", reply.Model)
	})

	t.Run("few shot", func(t *testing.T) {
		primary.EnqueueText("positive")
		rec := do(t, e, http.MethodPost, "/chat/few-shot", dto.FewShotRequest{
			Examples: []prompt.Example{{Input: "I love it", Output: "positive"}},
			Input:    "Great product",
		})
		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "positive", decode[chat.Reply](t, rec).Content)
	})
}

func TestPromptRouter(t *testing.T) {
	svc, lib, primary, _ := newChat(t)
	e := newEcho()
	NewPromptRouter(e, lib, svc).Bind()

	t.Run("list", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/prompts", nil)
		requireStatus(t, rec, http.StatusOK)
		assert.Len(t, decode[[]prompt.Template](t, rec), len(lib.List()))
	})

	t.Run("get unknown", func(t *testing.T) {
		requireStatus(t, do(t, e, http.MethodGet, "/prompts/nope", nil), http.StatusNotFound)
	})

	t.Run("render", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/prompts/greeting/render", dto.TemplateRequest{Params: prompt.Params{"name": "Ada"}})
		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "Hello Ada! Have a great day.", decode[dto.RenderResponse](t, rec).Text)
	})

	t.Run("render missing params", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/prompts/greeting/render", dto.TemplateRequest{})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("template chat", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/prompts/greeting/chat", dto.TemplateRequest{Params: prompt.Params{"name": "Ada"}})
		requireStatus(t, rec, http.StatusOK)
		reqs := primary.Requests()
		require.NotEmpty(t, reqs)
		assert.Equal(t, "Hello Ada! Have a great day.", reqs[len(reqs)-1].Messages[0].Content)
	})

	t.Run("parse list", func(t *testing.T) {
		primary.EnqueueText("Seoul\nBusan\nSeoul")
		rec := do(t, e, http.MethodPost, "/parse/list", dto.ParseRequest{Text: "Korean cities?"})
		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, []string{"Seoul", "Busan"}, decode[chat.ListReply](t, rec).Items)
	})

	t.Run("parse map", func(t *testing.T) {
		primary.EnqueueText("Go = Google\nRust = Mozilla")
		rec := do(t, e, http.MethodPost, "/parse/map", dto.ParseRequest{Text: "Language creators?", Separator: "="})
		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, map[string]string{"Go": "Google", "Rust": "Mozilla"}, decode[chat.MapReply](t, rec).Values)
	})

	t.Run("parse basic resume", func(t *testing.T) {
		primary.EnqueueText("```json\n{\"name\": \"Kim\", \"yearsOfExperience\": 5}\n```")
		rec := do(t, e, http.MethodPost, "/parse/resume/basic", dto.ParseRequest{Text: "Kim, backend engineer for 5 years"})
		requireStatus(t, rec, http.StatusOK)
		info := decode[chat.BasicResumeInfo](t, rec)
		assert.Equal(t, "Kim", info.Name)
		require.NotNil(t, info.YearsOfExperience)
		assert.Equal(t, 5, *info.YearsOfExperience)
	})

	t.Run("parse resume with bad json", func(t *testing.T) {
		primary.EnqueueText("not json at all")
		rec := do(t, e, http.MethodPost, "/parse/resume", dto.ParseRequest{Text: "resume"})
		requireStatus(t, rec, http.StatusBadRequest)
	})
}
