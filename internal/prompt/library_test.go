package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_Load(t *testing.T) {
	t.Run("valid library", func(t *testing.T) {
		yaml := `
templates:
  - name: code_review
    description: Review a snippet
    text: "Review this {language} code: {code}"
  - name: greeting
    text: "Hey {name}!"
`
		lib := NewLibrary()
		require.NoError(t, lib.Load([]byte(yaml)))

		out, err := lib.Render("code_review", Params{"language": "Go", "code": "x := 1"})
		require.NoError(t, err)
		assert.Equal(t, "Review this Go code: x := 1", out)

		overridden, err := lib.Render(Greeting, Params{"name": "Bob"})
		require.NoError(t, err)
		assert.Equal(t, "Hey Bob!", overridden)
	})

	t.Run("no templates", func(t *testing.T) {
		err := NewLibrary().Load([]byte("templates: []"))
		assert.ErrorContains(t, err, "no templates")
	})

	t.Run("unnamed template", func(t *testing.T) {
		err := NewLibrary().Load([]byte("templates:\n  - text: hi\n"))
		assert.ErrorContains(t, err, "index 0 has no name")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := NewLibrary().Load([]byte("templates: ["))
		assert.ErrorContains(t, err, "parse template library YAML")
	})
}

func TestLibrary_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  - name: echo\n    text: \"{x}\"\n"), 0o644))

	lib := NewLibrary()
	require.NoError(t, lib.LoadFile(path))

	tmpl, err := lib.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, tmpl.RequiredParams())

	assert.Error(t, lib.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLibrary_GetMissing(t *testing.T) {
	_, err := NewLibrary().Render("nope", nil)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestLibrary_ListSorted(t *testing.T) {
	names := make([]string, 0)
	for _, tmpl := range NewLibrary().List() {
		names = append(names, tmpl.Name)
	}
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, RAGAnswer)
}
