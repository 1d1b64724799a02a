package es

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/storagetest"
	pkgtesting "github.com/DjordjeVuckovic/genai-lab/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineFromScore(t *testing.T) {
	assert.InDelta(t, 1.0, cosineFromScore(1), 1e-9)
	assert.InDelta(t, 0.0, cosineFromScore(0.5), 1e-9)
	assert.InDelta(t, -1.0, cosineFromScore(0), 1e-9)
}

func TestIndexMapping(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(indexMapping(768)), &m))

	props := m["mappings"].(map[string]any)["properties"].(map[string]any)
	emb := props["embedding"].(map[string]any)
	assert.Equal(t, "dense_vector", emb["type"])
	assert.Equal(t, float64(768), emb["dims"])
	assert.Equal(t, "cosine", emb["similarity"])
	assert.Equal(t, "flattened", props["metadata"].(map[string]any)["type"])
}

func TestFilterQueries(t *testing.T) {
	assert.Nil(t, filterQueries(nil))

	q := filterQueries(map[string]string{"source": "x.md"})
	require.Len(t, q, 1)
	assert.Equal(t, "x.md", q[0].Term["metadata.source"].Value)
}

func TestNewStore_RequiresAddresses(t *testing.T) {
	_, err := NewStore(ClientConfig{})
	assert.Error(t, err)
}

func TestStore_Integration(t *testing.T) {
	pkgtesting.RequireIntegration(t, pkgtesting.ESIntegration)
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStore(ClientConfig{Addresses: []string{container.Address}, IndexName: "test-docs"})
	require.NoError(t, err)
	require.True(t, s.Healthy(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

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
	assert.InDelta(t, 1.0, hits[0].Score, 1e-4)

	hits, err = s.Search(ctx, storage.SearchRequest{Vector: []float32{1, 0, 0}, TopK: 3, Filter: map[string]string{"source": "y.md"}})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "b", hits[0].Document.ID)

	doc, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "gamma", doc.Content)

	var nf *apperr.NotFoundError
	require.NoError(t, s.Delete(ctx, "c"))
	assert.True(t, errors.As(s.Delete(ctx, "c"), &nf))

	docs, err := s.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)

	removed, err := s.DeleteWhere(ctx, map[string]string{"source": "x.md"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestStore_SearchThresholdIntegration(t *testing.T) {
	pkgtesting.RequireIntegration(t, pkgtesting.ESIntegration)
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStore(ClientConfig{Addresses: []string{container.Address}, IndexName: "threshold-docs"})
	require.NoError(t, err)

	storagetest.RunThresholdCases(t, s)
}
