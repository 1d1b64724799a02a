package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

const DefaultMaxSteps = 5

var ErrMaxSteps = errors.New("tool call loop exceeded max steps")

// Call is one executed tool call.
type Call struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
	Error     string `json:"error,omitempty"`
}

type Result struct {
	Answer string    `json:"answer"`
	Calls  []Call    `json:"calls"`
	Steps  int       `json:"steps"`
	Model  string    `json:"model"`
	Usage  llm.Usage `json:"usage"`
}

// Agent lets a model call registered tools until it produces a final answer.
type Agent struct {
	model    llm.ChatModel
	registry *Registry
	maxSteps int
}

type AgentOption func(a *Agent)

func WithMaxSteps(n int) AgentOption {
	return func(a *Agent) {
		if n > 0 {
			a.maxSteps = n
		}
	}
}

func NewAgent(model llm.ChatModel, registry *Registry, opts ...AgentOption) *Agent {
	a := &Agent{model: model, registry: registry, maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Registry() *Registry {
	return a.registry
}

// Ask runs the loop for a single question with an optional system prompt.
func (a *Agent) Ask(ctx context.Context, system, question string) (*Result, error) {
	if question == "" {
		return nil, apperr.NewValidation("message must not be empty")
	}
	var msgs []llm.Message
	if system != "" {
		msgs = append(msgs, llm.System(system))
	}
	return a.Run(ctx, append(msgs, llm.User(question)))
}

// Run sends messages with every tool definition. Requested calls are executed and
// their results appended; tool errors are reported back to the model as results.
// The loop stops at the first answer without tool calls, or fails with ErrMaxSteps.
func (a *Agent) Run(ctx context.Context, messages []llm.Message) (*Result, error) {
	msgs := append([]llm.Message(nil), messages...)
	defs := a.registry.Definitions()
	res := &Result{Calls: []Call{}, Model: a.model.Name()}

	for step := 1; step <= a.maxSteps; step++ {
		resp, err := a.model.Call(ctx, &llm.Request{Messages: msgs, Tools: defs})
		if err != nil {
			return nil, err
		}
		res.Steps = step
		res.Usage.InputTokens += resp.Usage.InputTokens
		res.Usage.OutputTokens += resp.Usage.OutputTokens

		if len(resp.Message.ToolCalls) == 0 {
			res.Answer = resp.Text()
			return res, nil
		}

		msgs = append(msgs, resp.Message)
		for _, tc := range resp.Message.ToolCalls {
			call := Call{Name: tc.Name, Arguments: tc.Arguments}
			out, err := a.registry.Call(ctx, tc.Name, tc.Arguments)
			if err != nil {
				slog.Warn("Tool call failed", "tool", tc.Name, "error", err)
				call.Error = err.Error()
				out = "error: " + err.Error()
			}
			call.Result = out
			res.Calls = append(res.Calls, call)
			msgs = append(msgs, llm.ToolResult(tc, out))
		}
	}

	return res, fmt.Errorf("%w (%d)", ErrMaxSteps, a.maxSteps)
}
