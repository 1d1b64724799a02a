package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
)

// Store keeps documents in memory and scores every one on search.
type Store struct {
	storageLock sync.RWMutex
	storage     map[string]storage.Document
}

func NewStore() *Store {
	return &Store{
		storage: make(map[string]storage.Document),
	}
}

func (s *Store) Add(_ context.Context, docs []storage.Document) ([]string, error) {
	prepared, err := storage.Prepare(docs)
	if err != nil {
		return nil, err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	ids := make([]string, len(prepared))
	for i, d := range prepared {
		s.storage[d.ID] = copyDoc(d)
		ids[i] = d.ID
	}

	slog.Debug("Saved documents to in-memory storage", "count", len(ids), "total", len(s.storage))
	return ids, nil
}

func (s *Store) Search(_ context.Context, req storage.SearchRequest) ([]storage.Hit, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	hits := make([]storage.Hit, 0)
	for _, d := range s.storage {
		if !storage.Matches(d.Metadata, req.Filter) {
			continue
		}
		score, err := similarity.Cosine(req.Vector, d.Embedding)
		if err != nil {
			return nil, apperr.NewValidationWrap("query vector does not match stored embeddings", err)
		}
		if !req.Accepts(score) {
			continue
		}
		hits = append(hits, storage.Hit{Document: copyDoc(d), Score: score})
	}

	storage.SortHits(hits)
	if len(hits) > req.TopK {
		hits = hits[:req.TopK]
	}
	return hits, nil
}

func (s *Store) Get(_ context.Context, id string) (*storage.Document, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	d, ok := s.storage[id]
	if !ok {
		return nil, apperr.NewNotFound("document", id)
	}
	out := copyDoc(d)
	return &out, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[id]; !ok {
		return apperr.NewNotFound("document", id)
	}
	delete(s.storage, id)
	return nil
}

func (s *Store) DeleteWhere(_ context.Context, filter map[string]string) (int, error) {
	if len(filter) == 0 {
		return 0, apperr.NewValidation("delete filter must not be empty")
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	removed := 0
	for id, d := range s.storage {
		if storage.Matches(d.Metadata, filter) {
			delete(s.storage, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) List(_ context.Context, offset, limit int) ([]storage.Document, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ids := make([]string, 0, len(s.storage))
	for id := range s.storage {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start, end := storage.Window(len(ids), offset, limit)
	out := make([]storage.Document, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, copyDoc(s.storage[id]))
	}
	return out, nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage), nil
}

// Clear drops every document.
func (s *Store) Clear() {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage = make(map[string]storage.Document)
}

func copyDoc(d storage.Document) storage.Document {
	d.Metadata = storage.CloneMetadata(d.Metadata)
	d.Embedding = append([]float32(nil), d.Embedding...)
	return d
}
