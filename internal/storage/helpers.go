package storage

import (
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/google/uuid"
)

const DefaultTopK = 4

// NoThreshold accepts every cosine score. A zero Threshold is normalized to it.
const NoThreshold = -1.0

// Prepare assigns missing IDs and checks every document has content and an embedding.
func Prepare(docs []Document) ([]Document, error) {
	out := make([]Document, len(docs))
	for i, d := range docs {
		if d.Content == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("document %d has no content", i))
		}
		if len(d.Embedding) == 0 {
			return nil, apperr.NewValidation(fmt.Sprintf("document %d has no embedding", i))
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		out[i] = d
	}
	return out, nil
}

// Normalize fills defaults and rejects requests that can never match.
func (r SearchRequest) Normalize() (SearchRequest, error) {
	if len(r.Vector) == 0 {
		return r, apperr.NewValidation("search vector must not be empty")
	}
	if r.TopK <= 0 {
		r.TopK = DefaultTopK
	}
	if r.Threshold == 0 {
		r.Threshold = NoThreshold
	}
	return r, nil
}

// Accepts reports whether score passes the threshold. Scores are compared without
// a lower bound once the threshold is at or below NoThreshold.
func (r SearchRequest) Accepts(score float64) bool {
	return r.Threshold <= NoThreshold || score >= r.Threshold
}

// Matches reports whether metadata contains every filter entry.
func Matches(metadata, filter map[string]string) bool {
	for k, v := range filter {
		if got, ok := metadata[k]; !ok || got != v {
			return false
		}
	}
	return true
}

// SortHits orders hits by score descending, then ID ascending.
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Document.ID < hits[j].Document.ID
	})
}

// Window clamps an offset/limit pair to n items.
func Window(n, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}

func CloneMetadata(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
