package llm

import (
	"context"
	"sync"
)

// Mock is a scripted chat model. Queued responses are returned in order; once the
// queue is empty the model answers with Fallback, or echoes the last user message.
type Mock struct {
	mu       sync.Mutex
	name     string
	queue    []Response
	requests []Request
	Fallback func(req *Request) string
}

func NewMock(name string) *Mock {
	if name == "" {
		name = "mock"
	}
	return &Mock{name: name}
}

func (m *Mock) Name() string {
	return "mock/" + m.name
}

// Enqueue adds scripted responses.
func (m *Mock) Enqueue(responses ...Response) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
	return m
}

// EnqueueText adds plain assistant answers.
func (m *Mock) EnqueueText(texts ...string) *Mock {
	for _, t := range texts {
		m.Enqueue(Response{Message: Assistant(t)})
	}
	return m
}

// Requests returns a copy of every request received so far.
func (m *Mock) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *Mock) Call(_ context.Context, req *Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := *req
	snapshot.Messages = append([]Message(nil), req.Messages...)
	m.requests = append(m.requests, snapshot)

	if len(m.queue) > 0 {
		resp := m.queue[0]
		m.queue = m.queue[1:]
		resp.Model = m.Name()
		if resp.FinishReason == "" {
			resp.FinishReason = "stop"
		}
		return &resp, nil
	}

	var text string
	if m.Fallback != nil {
		text = m.Fallback(req)
	} else {
		text = lastUserMessage(req.Messages)
	}
	return &Response{Message: Assistant(text), Model: m.Name(), FinishReason: "stop"}, nil
}

func lastUserMessage(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
