package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStore_History(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()

	require.NoError(t, s.Append(ctx, "s1", llm.User("one"), llm.Assistant("two")))
	require.NoError(t, s.Append(ctx, "s1", llm.User("three")))
	require.NoError(t, s.Append(ctx, "s2", llm.User("other")))

	tests := []struct {
		name string
		last int
		want []string
	}{
		{name: "all", last: 0, want: []string{"one", "two", "three"}},
		{name: "last two", last: 2, want: []string{"two", "three"}},
		{name: "more than stored", last: 10, want: []string{"one", "two", "three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := s.History(ctx, "s1", tt.last)
			require.NoError(t, err)
			got := make([]string, len(msgs))
			for i, m := range msgs {
				got[i] = m.Content
			}
			assert.Equal(t, tt.want, got)
		})
	}

	msgs, err := s.History(ctx, "unknown", 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestInMemStore_HistoryIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()
	require.NoError(t, s.Append(ctx, "s", llm.User("hello")))

	msgs, err := s.History(ctx, "s", 0)
	require.NoError(t, err)
	msgs[0].Content = "changed"

	again, err := s.History(ctx, "s", 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", again[0].Content)
}

func TestInMemStore_ClearAndSessions(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()
	require.NoError(t, s.Append(ctx, "b", llm.User("x")))
	require.NoError(t, s.Append(ctx, "a", llm.User("y")))

	sessions, err := s.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sessions)

	require.NoError(t, s.Clear(ctx, "a"))
	sessions, err = s.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, sessions)
}

func TestInMemStore_RejectsEmptySession(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()
	var ve *apperr.ValidationError

	assert.True(t, errors.As(s.Append(ctx, " ", llm.User("x")), &ve))
	_, err := s.History(ctx, "", 0)
	assert.True(t, errors.As(err, &ve))
	assert.True(t, errors.As(s.Clear(ctx, ""), &ve))
}
