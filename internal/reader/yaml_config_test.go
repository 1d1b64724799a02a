package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMapping = `
kind: DocumentMapping
version: v1
metadata:
  name: "Product FAQ"
dataset: faq
idColumn: id
textColumns:
  - source: question
    label: Question
    required: true
  - source: answer
    label: Answer
metadataColumns:
  category: category
`

func TestYAMLConfigLoader_Load(t *testing.T) {
	cfg, err := NewYAMLConfigLoader(strings.NewReader(validMapping)).Load(true)

	require.NoError(t, err)
	assert.Equal(t, MappingKind, cfg.Kind)
	assert.Equal(t, "v1", cfg.Version)
	assert.Equal(t, "Product FAQ", cfg.Metadata.Name)
	assert.Equal(t, "faq", cfg.Dataset)
	assert.Equal(t, "id", cfg.IDColumn)
	require.Len(t, cfg.TextColumns, 2)
	assert.True(t, cfg.TextColumns[0].Required)
	assert.Equal(t, map[string]string{"category": "category"}, cfg.MetadataColumns)
}

func TestYAMLConfigLoader_UnknownField(t *testing.T) {
	_, err := NewYAMLConfigLoader(strings.NewReader(`
kind: DocumentMapping
version: v1
metadata:
  name: "Typo"
dataset: faq
text_columns:
  - source: question
`)).Load(false)

	assert.Error(t, err)
}

func TestLoadMappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validMapping), 0o644))

	cfg, err := LoadMappingFile(path)
	require.NoError(t, err)
	assert.Equal(t, "faq", cfg.Dataset)

	_, err = LoadMappingFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
