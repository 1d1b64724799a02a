package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex(vectors, in_mem.NewStore())

	_, err := idx.AddDocument(ctx, "1", "cat", map[string]string{"kind": "animal"})
	require.NoError(t, err)
	_, err = idx.AddDocument(ctx, "2", "car", map[string]string{"kind": "vehicle"})
	require.NoError(t, err)
	id, err := idx.AddDocument(ctx, "", "dog", map[string]string{"kind": "animal"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	hits, err := idx.Search(ctx, Query{Text: "kitten", TopK: 2})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "1", hits[0].ID)
	assert.Equal(t, "cat", hits[0].Content)
	assert.Equal(t, "dog", hits[1].Content)

	hits, err = idx.Search(ctx, Query{Text: "truck", TopK: 5, Filter: map[string]string{"kind": "vehicle"}})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "2", hits[0].ID)

	hits, err = idx.Search(ctx, Query{Text: "cat", TopK: 5, Threshold: 0.99})
	require.NoError(t, err)
	require.Len(t, hits, 1)

	n, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, idx.Remove(ctx, "2"))
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(idx.Remove(ctx, "2"), &nf))

	removed, err := idx.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	docs, err := idx.Documents(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = idx.Search(ctx, Query{})
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
