package rag

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmbedder() *embedding.Embedder {
	return embedding.NewEmbedder(embedding.NewHashClient(128))
}

func chunksOf(t *testing.T, store storage.Store, path string) int {
	t.Helper()
	docs, err := store.List(context.Background(), 0, 0)
	require.NoError(t, err)
	n := 0
	for _, d := range docs {
		if d.Metadata[MetaSource] == path {
			n++
		}
	}
	return n
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPipeline_Run(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "# Spring\n\nSpring Boot makes services easy.")
	writeFile(t, b, "Embeddings map text to vectors.")
	writeFile(t, filepath.Join(dir, "ignored.pdf"), "binary")

	store := in_mem.NewStore()
	p := NewPipeline(newTestEmbedder(), store, WithPipelineConfig(PipelineConfig{BatchSize: 1}))

	report, err := p.Run(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, report.New)
	assert.Equal(t, 2, report.Total)
	assert.Zero(t, report.Skipped)
	assert.Equal(t, 2, p.Tracker().Count())
	assert.Positive(t, chunksOf(t, store, a))
	assert.Positive(t, chunksOf(t, store, b))

	report, err = p.Run(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped)
	assert.Zero(t, report.New+report.Updated)

	writeFile(t, a, "# Spring\n\nSpring AI adds chat clients.")
	require.NoError(t, os.Remove(b))

	report, err = p.Run(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 1, report.Total)
	assert.Zero(t, chunksOf(t, store, b))
	assert.False(t, p.Tracker().Tracked(b))

	docs, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	for _, d := range docs {
		assert.NotContains(t, d.Content, "easy")
	}
}

func TestPipeline_RunMissingDir(t *testing.T) {
	p := NewPipeline(newTestEmbedder(), in_mem.NewStore())
	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPipeline_IndexAndRemoveFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "pgvector stores embeddings in postgres.")

	store := in_mem.NewStore()
	p := NewPipeline(newTestEmbedder(), store)

	changed, err := p.IndexFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = p.IndexFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, changed)

	n, err := p.RemoveFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, chunksOf(t, store, path))
}

func TestWithin(t *testing.T) {
	dir := filepath.Join("docs", "wiki")
	assert.True(t, within(dir, filepath.Join(dir, "a.md")))
	assert.True(t, within(dir, filepath.Join(dir, "sub", "b.md")))
	assert.False(t, within(dir, filepath.Join("docs", "other.md")))
}
