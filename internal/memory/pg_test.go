package memory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/pg"
	pkgtesting "github.com/DjordjeVuckovic/genai-lab/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgStore(t *testing.T) {
	pkgtesting.RequireIntegration(t, pkgtesting.PGIntegration)
	ctx := context.Background()
	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	defer pool.Close()

	s := NewPgStore(pool)
	require.NoError(t, s.EnsureSchema(ctx))

	require.NoError(t, s.Append(ctx, "s1", llm.User("one"), llm.Assistant("two"), llm.User("three")))
	require.NoError(t, s.Append(ctx, "s2", llm.User("other")))

	msgs, err := s.History(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.Assistant("two"), msgs[0])
	assert.Equal(t, llm.User("three"), msgs[1])

	sessions, err := s.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, sessions)

	require.NoError(t, s.Clear(ctx, "s1"))
	msgs, err = s.History(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
