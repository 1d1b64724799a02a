package collector

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileCollector_Collect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A")
	writeFile(t, dir, "nested/b.txt", "B")
	writeFile(t, dir, "c.pdf", "binary")

	results, err := NewFileCollector(dir, WithWorkers(2)).Collect(context.Background())
	require.NoError(t, err)

	var names []string
	for res := range results {
		require.NoError(t, res.Err)
		rel, err := filepath.Rel(dir, res.Result.Path)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
		assert.Len(t, res.Result.Hash, 64)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.md", "nested/b.txt"}, names)
}

func TestFileCollector_MissingDir(t *testing.T) {
	_, err := NewFileCollector(filepath.Join(t.TempDir(), "missing")).Collect(context.Background())
	assert.Error(t, err)
}

func TestFileCollector_Supported(t *testing.T) {
	c := NewFileCollector(".", WithExtensions(".md"))
	assert.True(t, c.Supported("x/README.MD"))
	assert.False(t, c.Supported("notes.txt"))
}

func TestHashContent(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashContent(nil))
	assert.NotEqual(t, HashContent([]byte("a")), HashContent([]byte("b")))
}
