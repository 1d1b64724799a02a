// Package rag loads documents into a vector store and answers questions from
// the chunks it retrieves.
package rag

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/collector"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100

	MetaSource   = "source"
	MetaFileHash = "file_hash"
	MetaChunk    = "chunk"
	MetaFilename = "filename"
)

// Loader splits files into chunk documents ready for embedding.
type Loader struct {
	chunkSize    int
	chunkOverlap int
}

type LoaderOption func(*Loader)

func WithChunkSize(size, overlap int) LoaderOption {
	return func(l *Loader) {
		if size > 0 {
			l.chunkSize = size
		}
		if overlap >= 0 && overlap < l.chunkSize {
			l.chunkOverlap = overlap
		}
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{chunkSize: DefaultChunkSize, chunkOverlap: DefaultChunkOverlap}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Split chunks a file. Markdown files are split on headings first.
func (l *Loader) Split(file collector.SourceFile) ([]storage.Document, error) {
	chunks, err := l.splitter(file.Path).SplitText(string(file.Content))
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", file.Path, err)
	}

	docs := make([]storage.Document, 0, len(chunks))
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		docs = append(docs, storage.Document{
			ID:      ChunkID(file.Path, i),
			Content: chunk,
			Metadata: map[string]string{
				MetaSource:   file.Path,
				MetaFileHash: file.Hash,
				MetaChunk:    strconv.Itoa(i),
				MetaFilename: filepath.Base(file.Path),
			},
		})
	}
	return docs, nil
}

// SplitText chunks raw text with the recursive character splitter.
func (l *Loader) SplitText(text string) ([]string, error) {
	return l.splitter("").SplitText(text)
}

func (l *Loader) splitter(path string) textsplitter.TextSplitter {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return textsplitter.NewMarkdownTextSplitter(
			textsplitter.WithChunkSize(l.chunkSize),
			textsplitter.WithChunkOverlap(l.chunkOverlap),
		)
	}
	return textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(l.chunkSize),
		textsplitter.WithChunkOverlap(l.chunkOverlap),
	)
}

// ChunkID is stable for a path and chunk position so re-indexing overwrites.
func ChunkID(path string, chunk int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(path+"#"+strconv.Itoa(chunk))).String()
}
