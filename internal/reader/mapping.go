package reader

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
)

const (
	MappingKind    = "DocumentMapping"
	MappingVersion = "v1"

	MetaDataset = "dataset"
)

// DocumentMapping describes how dataset columns become a stored document.
type DocumentMapping struct {
	Kind     string   `yaml:"kind"`
	Version  string   `yaml:"version"`
	Metadata Metadata `yaml:"metadata"`
	Dataset  string   `yaml:"dataset"`

	// IDColumn is optional; rows without an id get a generated one on insert.
	IDColumn string `yaml:"idColumn,omitempty"`
	// TextColumns are joined with Separator into the embedded content.
	TextColumns []TextColumn `yaml:"textColumns"`
	Separator   string       `yaml:"separator,omitempty"`
	// MetadataColumns maps a source column to a metadata key.
	MetadataColumns map[string]string `yaml:"metadataColumns,omitempty"`
}

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type TextColumn struct {
	Source   string `yaml:"source"`
	Label    string `yaml:"label,omitempty"`
	Required bool   `yaml:"required,omitempty"`
}

func (m *DocumentMapping) Validate() error {
	if m.Kind != MappingKind {
		return fmt.Errorf("kind must be %q", MappingKind)
	}
	if m.Version != MappingVersion {
		return fmt.Errorf("version must be %q", MappingVersion)
	}
	if m.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if m.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if len(m.TextColumns) == 0 {
		return fmt.Errorf("at least one text column is required")
	}
	for i, c := range m.TextColumns {
		if c.Source == "" {
			return fmt.Errorf("textColumns[%d] must have source defined", i)
		}
	}
	return nil
}

type MappingError struct {
	Line    int
	Message string
}

func (e *MappingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("mapping error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("mapping error: %s", e.Message)
}

// Map builds a document from one record. Labeled columns render as "Label: value".
func (m *DocumentMapping) Map(record Record) (storage.Document, error) {
	sep := m.Separator
	if sep == "" {
		sep = "\n"
	}

	parts := make([]string, 0, len(m.TextColumns))
	for _, c := range m.TextColumns {
		v := strings.TrimSpace(record[c.Source])
		if v == "" {
			if c.Required {
				return storage.Document{}, &MappingError{Message: "missing required column: " + c.Source}
			}
			continue
		}
		if c.Label != "" {
			v = c.Label + ": " + v
		}
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return storage.Document{}, &MappingError{Message: "no text columns have a value"}
	}

	meta := map[string]string{MetaDataset: m.Dataset}
	for col, key := range m.MetadataColumns {
		if v := strings.TrimSpace(record[col]); v != "" {
			meta[key] = v
		}
	}

	doc := storage.Document{
		Content:  strings.Join(parts, sep),
		Metadata: meta,
	}
	if m.IDColumn != "" {
		doc.ID = strings.TrimSpace(record[m.IDColumn])
	}
	return doc, nil
}
