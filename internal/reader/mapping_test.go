package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faqMapping() *DocumentMapping {
	return &DocumentMapping{
		Kind:     MappingKind,
		Version:  MappingVersion,
		Metadata: Metadata{Name: "FAQ"},
		Dataset:  "faq",
		IDColumn: "id",
		TextColumns: []TextColumn{
			{Source: "question", Label: "Question", Required: true},
			{Source: "answer", Label: "Answer"},
		},
		MetadataColumns: map[string]string{"category": "topic"},
	}
}

func TestDocumentMapping_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *DocumentMapping)
		wantErr string
	}{
		{name: "valid", mutate: func(*DocumentMapping) {}},
		{name: "wrong kind", mutate: func(m *DocumentMapping) { m.Kind = "DataMapper" }, wantErr: "kind"},
		{name: "wrong version", mutate: func(m *DocumentMapping) { m.Version = "v2" }, wantErr: "version"},
		{name: "no name", mutate: func(m *DocumentMapping) { m.Metadata.Name = "" }, wantErr: "metadata.name"},
		{name: "no dataset", mutate: func(m *DocumentMapping) { m.Dataset = "" }, wantErr: "dataset"},
		{name: "no text columns", mutate: func(m *DocumentMapping) { m.TextColumns = nil }, wantErr: "text column"},
		{name: "empty source", mutate: func(m *DocumentMapping) { m.TextColumns[1].Source = "" }, wantErr: "textColumns[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := faqMapping()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDocumentMapping_Map(t *testing.T) {
	doc, err := faqMapping().Map(Record{
		"id":       "q-1",
		"question": " What is RAG? ",
		"answer":   "Retrieval augmented generation.",
		"category": "basics",
		"ignored":  "x",
	})

	require.NoError(t, err)
	assert.Equal(t, "q-1", doc.ID)
	assert.Equal(t, "Question: What is RAG?\nAnswer: Retrieval augmented generation.", doc.Content)
	assert.Equal(t, map[string]string{MetaDataset: "faq", "topic": "basics"}, doc.Metadata)
}

func TestDocumentMapping_Map_OptionalColumnSkipped(t *testing.T) {
	m := faqMapping()
	m.Separator = " | "
	m.IDColumn = ""

	doc, err := m.Map(Record{"question": "Why chunk?"})
	require.NoError(t, err)
	assert.Empty(t, doc.ID)
	assert.Equal(t, "Question: Why chunk?", doc.Content)
}

func TestDocumentMapping_Map_Errors(t *testing.T) {
	_, err := faqMapping().Map(Record{"answer": "orphan"})
	var me *MappingError
	require.ErrorAs(t, err, &me)
	assert.Contains(t, me.Message, "question")

	m := faqMapping()
	m.TextColumns[0].Required = false
	_, err = m.Map(Record{"id": "1"})
	require.ErrorAs(t, err, &me)
}
