package embedding

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashClient(t *testing.T) {
	client := NewHashClient(64)
	ctx := context.Background()

	embed := func(text string) []float32 {
		resp, err := client.Generate(ctx, Request{Model: "hash", Prompt: text})
		require.NoError(t, err)
		return resp.Embedding
	}

	a := embed("Go is a statically typed language")
	b := embed("go IS a statically-typed language!")
	c := embed("Bananas grow in tropical climates")

	assert.Len(t, a, 64)
	assert.InDelta(t, 1.0, similarity.Norm(a), 1e-6)

	same, err := similarity.Cosine(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-6)

	diff, err := similarity.Cosine(a, c)
	require.NoError(t, err)
	assert.Less(t, diff, same)
}

func TestHashClient_Batch(t *testing.T) {
	client := NewHashClient(0)

	resp, err := client.GenerateBatch(context.Background(), BatchRequest{Prompts: []string{"one", "two", "one"}})
	require.NoError(t, err)
	require.Len(t, resp.Embeddings, 3)
	assert.Len(t, resp.Embeddings[0], defaultHashDimensions)
	assert.Equal(t, resp.Embeddings[0], resp.Embeddings[2])
}

func TestHashClient_OnlyPunctuation(t *testing.T) {
	resp, err := NewHashClient(8).Generate(context.Background(), Request{Prompt: "?!..."})
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 8), resp.Embedding)
}
