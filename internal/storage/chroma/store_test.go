package chroma

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/storagetest"
	pkgtesting "github.com/DjordjeVuckovic/genai-lab/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{name: "strips doc id", raw: `{"doc_id":"a","source":"x.md"}`, want: map[string]string{"source": "x.md"}},
		{name: "only doc id", raw: `{"doc_id":"a"}`, want: nil},
		{name: "numbers", raw: `{"chunk":3,"ok":true}`, want: map[string]string{"chunk": "3", "ok": "true"}},
		{name: "invalid", raw: `[1,2]`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeMetadata([]byte(tt.raw)))
		})
	}
}

func TestWhereClause(t *testing.T) {
	assert.Nil(t, whereClause(nil))
	assert.NotNil(t, whereClause(map[string]string{"source": "x.md"}))
	assert.NotNil(t, whereClause(map[string]string{"source": "x.md", "chunk": "1"}))
}

func TestStore_Integration(t *testing.T) {
	pkgtesting.RequireIntegration(t, pkgtesting.ChromaIntegration)
	ctx := context.Background()
	container := pkgtesting.NewChromaContainer(ctx, t)

	s, err := NewStore(ctx, Config{URL: container.URL, Collection: "test"})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Add(ctx, []storage.Document{
		{ID: "a", Content: "alpha", Embedding: []float32{1, 0, 0}, Metadata: map[string]string{"source": "x.md"}},
		{ID: "b", Content: "beta", Embedding: []float32{0.9, 0.1, 0}, Metadata: map[string]string{"source": "y.md"}},
		{ID: "c", Content: "gamma", Embedding: []float32{0, 1, 0}, Metadata: map[string]string{"source": "x.md"}},
	})
	require.NoError(t, err)

	hits, err := s.Search(ctx, storage.SearchRequest{Vector: []float32{1, 0, 0}, TopK: 2})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Document.ID)
	assert.Equal(t, map[string]string{"source": "x.md"}, hits[0].Document.Metadata)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	removed, err := s.DeleteWhere(ctx, map[string]string{"source": "x.md"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	docs, err := s.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "beta", docs[0].Content)
}

func TestStore_SearchThresholdIntegration(t *testing.T) {
	pkgtesting.RequireIntegration(t, pkgtesting.ChromaIntegration)
	ctx := context.Background()
	container := pkgtesting.NewChromaContainer(ctx, t)

	s, err := NewStore(ctx, Config{URL: container.URL, Collection: "threshold"})
	require.NoError(t, err)
	defer s.Close()

	storagetest.RunThresholdCases(t, s)
}
