package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

type InMemStore struct {
	mu       sync.RWMutex
	sessions map[string][]llm.Message
}

func NewInMemStore() *InMemStore {
	return &InMemStore{sessions: make(map[string][]llm.Message)}
}

func (s *InMemStore) Append(_ context.Context, session string, messages ...llm.Message) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session] = append(s.sessions[session], messages...)
	return nil
}

func (s *InMemStore) History(_ context.Context, session string, last int) ([]llm.Message, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]llm.Message{}, tail(s.sessions[session], last)...), nil
}

func (s *InMemStore) Clear(_ context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
	return nil
}

func (s *InMemStore) Sessions(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
