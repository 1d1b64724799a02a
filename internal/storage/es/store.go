// Package es stores documents in an Elasticsearch index with a dense_vector
// field and answers searches with approximate kNN.
package es

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/result"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// maxListSize caps List when no limit is given; it matches the default max_result_window.
const maxListSize = 10000

// esDocument is the indexed source of a storage.Document.
type esDocument struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Embedding []float32         `json:"embedding"`
	IndexedAt time.Time         `json:"indexed_at"`
}

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string

	indexMu sync.Mutex
	indexed bool
}

func NewStore(config ClientConfig) (*Store, error) {
	if config.IndexName == "" {
		config.IndexName = DefaultIndexName
	}
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	return &Store{client: client, indexName: config.IndexName}, nil
}

func (e *Store) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

// EnsureIndex creates the index with a dense_vector field sized to dims.
// The mapping is fixed once the first document arrives.
func (e *Store) EnsureIndex(ctx context.Context, dims int) error {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()
	if e.indexed {
		return nil
	}

	exists, err := e.indexExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		createRes, err := e.client.Indices.Create(e.indexName).
			Raw(strings.NewReader(indexMapping(dims))).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
		if !createRes.Acknowledged {
			return fmt.Errorf("index creation was not acknowledged")
		}
		slog.Info("Index created successfully", "index", e.indexName, "dims", dims)
	}

	e.indexed = true
	return nil
}

func (e *Store) Add(ctx context.Context, docs []storage.Document) ([]string, error) {
	prepared, err := storage.Prepare(docs)
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return []string{}, nil
	}
	if err := e.EnsureIndex(ctx, len(prepared[0].Embedding)); err != nil {
		return nil, err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64
	ids := make([]string, len(prepared))
	now := time.Now()
	for i, d := range prepared {
		ids[i] = d.ID
		body, err := json.Marshal(esDocument{
			ID:        d.ID,
			Content:   d.Content,
			Metadata:  d.Metadata,
			Embedding: d.Embedding,
			IndexedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %s: %w", d.ID, err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: d.ID,
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add document to bulk indexer: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return nil, fmt.Errorf("failed to close bulk indexer: %w", err)
	}
	if n := failed.Load(); n > 0 {
		return nil, fmt.Errorf("failed to index %d out of %d documents", n, len(prepared))
	}
	if err := e.refresh(ctx); err != nil {
		return nil, err
	}

	slog.Debug("Bulk indexing completed", "total", len(prepared), "index", e.indexName)
	return ids, nil
}

func (e *Store) Search(ctx context.Context, req storage.SearchRequest) ([]storage.Hit, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	exists, err := e.indexExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []storage.Hit{}, nil
	}

	k := req.TopK
	numCandidates := max(k*10, 100)
	knn := types.KnnSearch{
		Field:         "embedding",
		K:             &k,
		NumCandidates: &numCandidates,
		QueryVector:   req.Vector,
		Filter:        filterQueries(req.Filter),
	}

	res, err := e.client.Search().
		Index(e.indexName).
		Request(&search.Request{
			Knn:  []types.KnnSearch{knn},
			Size: &k,
		}).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute knn search: %w", err)
	}

	hits := make([]storage.Hit, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		doc, err := decodeSource(h.Source_)
		if err != nil {
			return nil, err
		}
		var raw float64
		if h.Score_ != nil {
			raw = float64(*h.Score_)
		}
		score := cosineFromScore(raw)
		if !req.Accepts(score) {
			continue
		}
		hits = append(hits, storage.Hit{Document: *doc, Score: score})
	}

	storage.SortHits(hits)
	return hits, nil
}

func (e *Store) Get(ctx context.Context, id string) (*storage.Document, error) {
	res, err := e.client.Get(e.indexName, id).Do(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NewNotFound("document", id)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound("document", id)
	}
	return decodeSource(res.Source_)
}

func (e *Store) Delete(ctx context.Context, id string) error {
	res, err := e.client.Delete(e.indexName, id).Do(ctx)
	if err != nil {
		if isNotFound(err) {
			return apperr.NewNotFound("document", id)
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if res.Result == result.Notfound {
		return apperr.NewNotFound("document", id)
	}
	return e.refresh(ctx)
}

func (e *Store) DeleteWhere(ctx context.Context, filter map[string]string) (int, error) {
	if len(filter) == 0 {
		return 0, apperr.NewValidation("delete filter must not be empty")
	}
	exists, err := e.indexExists(ctx)
	if err != nil || !exists {
		return 0, err
	}

	res, err := e.client.DeleteByQuery(e.indexName).
		Query(&types.Query{Bool: &types.BoolQuery{Filter: filterQueries(filter)}}).
		Refresh(true).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	if res.Deleted == nil {
		return 0, nil
	}
	return int(*res.Deleted), nil
}

func (e *Store) List(ctx context.Context, offset, limit int) ([]storage.Document, error) {
	exists, err := e.indexExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []storage.Document{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxListSize {
		limit = maxListSize
	}

	asc := sortorder.Asc
	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &asc},
			},
		}).
		From(offset).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]storage.Document, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		doc, err := decodeSource(h.Source_)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (e *Store) Count(ctx context.Context) (int, error) {
	exists, err := e.indexExists(ctx)
	if err != nil || !exists {
		return 0, err
	}
	res, err := e.client.Count().Index(e.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(res.Count), nil
}

func (e *Store) indexExists(ctx context.Context) (bool, error) {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return false, apperr.NewUnavailable("elasticsearch", err)
	}
	return exists, nil
}

func (e *Store) refresh(ctx context.Context) error {
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}

func indexMapping(dims int) string {
	return fmt.Sprintf(`{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "content":    {"type": "text"},
      "metadata":   {"type": "flattened"},
      "indexed_at": {"type": "date"},
      "embedding":  {"type": "dense_vector", "dims": %d, "index": true, "similarity": "cosine"}
    }
  }
}`, dims)
}

func filterQueries(filter map[string]string) []types.Query {
	if len(filter) == 0 {
		return nil
	}
	out := make([]types.Query, 0, len(filter))
	for k, v := range filter {
		out = append(out, types.Query{
			Term: map[string]types.TermQuery{
				"metadata." + k: {Value: v},
			},
		})
	}
	return out
}

// cosineFromScore undoes the (1 + cosine) / 2 scaling Elasticsearch applies to cosine similarity.
func cosineFromScore(score float64) float64 {
	return 2*score - 1
}

func decodeSource(src json.RawMessage) (*storage.Document, error) {
	var d esDocument
	if err := json.Unmarshal(src, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document source: %w", err)
	}
	return &storage.Document{
		ID:        d.ID,
		Content:   d.Content,
		Metadata:  d.Metadata,
		Embedding: d.Embedding,
	}, nil
}

func isNotFound(err error) bool {
	var esErr *types.ElasticsearchError
	return errors.As(err, &esErr) && esErr.Status == http.StatusNotFound
}
