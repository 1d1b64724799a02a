package storage

import (
	"context"
)

// Document is a chunk of text with its embedding and string metadata.
type Document struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Embedding []float32         `json:"-"`
}

// SearchRequest asks for the TopK documents closest to Vector. Hits scoring below
// Threshold are dropped; a zero Threshold keeps every hit, negative scores included.
// Filter keeps documents whose metadata has every key/value.
type SearchRequest struct {
	Vector    []float32
	TopK      int
	Threshold float64
	Filter    map[string]string
}

// Hit is a search result; Score is the cosine similarity in [-1, 1].
type Hit struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// Store persists documents and answers nearest-neighbour queries.
type Store interface {
	// Add inserts or replaces documents. Documents without an ID get a random one.
	// Returns the IDs in input order.
	Add(ctx context.Context, docs []Document) ([]string, error)
	// Search returns hits ordered by score, best first.
	Search(ctx context.Context, req SearchRequest) ([]Hit, error)
	Get(ctx context.Context, id string) (*Document, error)
	// Delete removes one document. Deleting a missing ID is a not found error.
	Delete(ctx context.Context, id string) error
	// DeleteWhere removes every document matching filter and returns how many were removed.
	DeleteWhere(ctx context.Context, filter map[string]string) (int, error)
	// List returns documents ordered by ID.
	List(ctx context.Context, offset, limit int) ([]Document, error)
	Count(ctx context.Context) (int, error)
}

type Type string

const (
	ES     Type = "es"
	PG     Type = "pg"
	InMem  Type = "in_mem"
	SQLite Type = "sqlite"
	Chroma Type = "chroma"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
