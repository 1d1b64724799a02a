// Package chroma keeps documents in a Chroma collection configured for cosine distance.
package chroma

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	chromago "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
)

const (
	DefaultURL        = "http://localhost:8000"
	DefaultCollection = "genai-lab"

	// docIDKey keeps every metadata map non-empty; it is stripped on read.
	docIDKey = "doc_id"
)

type Config struct {
	URL        string
	Collection string
}

type Store struct {
	client     chromago.Client
	collection chromago.Collection
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := chromago.NewHTTPClient(chromago.WithBaseURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to create chroma client: %w", err)
	}

	collection, err := client.GetOrCreateCollection(
		ctx,
		cfg.Collection,
		chromago.WithCollectionMetadataCreate(
			chromago.NewMetadata(
				chromago.NewStringAttribute("hnsw:space", "cosine"),
				chromago.NewStringAttribute("created_by", "genai-lab"),
			),
		),
	)
	if err != nil {
		_ = client.Close()
		return nil, apperr.NewUnavailable("chroma", err)
	}

	slog.Info("Using chroma collection", "url", cfg.URL, "collection", cfg.Collection)
	return &Store{client: client, collection: collection}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Healthy(ctx context.Context) bool {
	_, err := s.collection.Count(ctx)
	return err == nil
}

func (s *Store) Add(ctx context.Context, docs []storage.Document) ([]string, error) {
	prepared, err := storage.Prepare(docs)
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return []string{}, nil
	}

	ids := make([]chromago.DocumentID, len(prepared))
	texts := make([]string, len(prepared))
	embs := make([]embeddings.Embedding, len(prepared))
	metas := make([]chromago.DocumentMetadata, len(prepared))
	out := make([]string, len(prepared))
	for i, d := range prepared {
		ids[i] = chromago.DocumentID(d.ID)
		texts[i] = d.Content
		embs[i] = embeddings.NewEmbeddingFromFloat32(d.Embedding)
		metas[i] = toChromaMetadata(d.ID, d.Metadata)
		out[i] = d.ID
	}

	err = s.collection.Upsert(ctx,
		chromago.WithIDs(ids...),
		chromago.WithTexts(texts...),
		chromago.WithEmbeddings(embs...),
		chromago.WithMetadatas(metas...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add documents to chroma: %w", err)
	}
	return out, nil
}

func (s *Store) Search(ctx context.Context, req storage.SearchRequest) ([]storage.Hit, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	opts := []chromago.CollectionQueryOption{
		chromago.WithQueryEmbeddings(embeddings.NewEmbeddingFromFloat32(req.Vector)),
		chromago.WithNResults(req.TopK),
	}
	if where := whereClause(req.Filter); where != nil {
		opts = append(opts, chromago.WithWhereQuery(where))
	}

	results, err := s.collection.Query(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chroma: %w", err)
	}

	idGroups := results.GetIDGroups()
	if len(idGroups) == 0 {
		return []storage.Hit{}, nil
	}
	docs := results.GetDocumentsGroups()[0]
	metas := results.GetMetadatasGroups()[0]
	distances := results.GetDistancesGroups()[0]

	hits := make([]storage.Hit, 0, len(idGroups[0]))
	for i, id := range idGroups[0] {
		// cosine space reports distance = 1 - similarity
		score := 1 - float64(distances[i])
		if !req.Accepts(score) {
			continue
		}
		doc := storage.Document{ID: string(id)}
		if i < len(docs) && docs[i] != nil {
			doc.Content = docs[i].ContentString()
		}
		if i < len(metas) {
			doc.Metadata = fromChromaMetadata(metas[i])
		}
		hits = append(hits, storage.Hit{Document: doc, Score: score})
	}

	storage.SortHits(hits)
	return hits, nil
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Document, error) {
	docs, err := s.get(ctx, chromago.WithIDsGet(chromago.DocumentID(id)))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperr.NewNotFound("document", id)
	}
	return &docs[0], nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.collection.Delete(ctx, chromago.WithIDsDelete(chromago.DocumentID(id))); err != nil {
		return fmt.Errorf("failed to delete document from chroma: %w", err)
	}
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, filter map[string]string) (int, error) {
	where := whereClause(filter)
	if where == nil {
		return 0, apperr.NewValidation("delete filter must not be empty")
	}

	matched, err := s.get(ctx, chromago.WithWhereGet(where))
	if err != nil {
		return 0, err
	}
	if len(matched) == 0 {
		return 0, nil
	}
	if err := s.collection.Delete(ctx, chromago.WithWhereDelete(where)); err != nil {
		return 0, fmt.Errorf("failed to delete documents from chroma: %w", err)
	}
	return len(matched), nil
}

func (s *Store) List(ctx context.Context, offset, limit int) ([]storage.Document, error) {
	docs, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	start, end := storage.Window(len(docs), offset, limit)
	return docs[start:end], nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.collection.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items in collection: %w", err)
	}
	return int(n), nil
}

func (s *Store) get(ctx context.Context, opts ...chromago.CollectionGetOption) ([]storage.Document, error) {
	results, err := s.collection.Get(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents from chroma: %w", err)
	}

	ids := results.GetIDs()
	texts := results.GetDocuments()
	metas := results.GetMetadatas()

	docs := make([]storage.Document, 0, len(ids))
	for i, id := range ids {
		doc := storage.Document{ID: string(id)}
		if i < len(texts) && texts[i] != nil {
			doc.Content = texts[i].ContentString()
		}
		if i < len(metas) {
			doc.Metadata = fromChromaMetadata(metas[i])
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func toChromaMetadata(id string, m map[string]string) chromago.DocumentMetadata {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]*chromago.MetaAttribute, 0, len(keys)+1)
	attrs = append(attrs, chromago.NewStringAttribute(docIDKey, id))
	for _, k := range keys {
		attrs = append(attrs, chromago.NewStringAttribute(k, m[k]))
	}
	return chromago.NewDocumentMetadata(attrs...)
}

// fromChromaMetadata round-trips through JSON since DocumentMetadata exposes no map accessor.
func fromChromaMetadata(meta chromago.DocumentMetadata) map[string]string {
	if meta == nil {
		return nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		slog.Warn("could not marshal chroma metadata", "error", err)
		return nil
	}
	return decodeMetadata(raw)
}

func decodeMetadata(raw []byte) map[string]string {
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		slog.Warn("could not unmarshal chroma metadata", "error", err)
		return nil
	}
	delete(values, docIDKey)
	if len(values) == 0 {
		return nil
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		switch tv := v.(type) {
		case string:
			out[k] = tv
		default:
			out[k] = fmt.Sprint(tv)
		}
	}
	return out
}

func whereClause(filter map[string]string) chromago.WhereClause {
	if len(filter) == 0 {
		return nil
	}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clauses := make([]chromago.WhereClause, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, chromago.EqString(k, filter[k]))
	}
	if len(clauses) == 1 {
		return clauses[0]
	}
	return chromago.And(clauses...)
}
