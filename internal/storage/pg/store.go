package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

const schema = `
	CREATE EXTENSION IF NOT EXISTS vector;
	CREATE TABLE IF NOT EXISTS documents (
		id         TEXT PRIMARY KEY,
		content    TEXT        NOT NULL,
		metadata   JSONB       NOT NULL DEFAULT '{}'::jsonb,
		embedding  vector      NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_documents_metadata ON documents USING GIN (metadata jsonb_path_ops);
`

// Store keeps documents in a pgvector table and ranks them with the cosine distance operator.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{db: pool.GetConn()}
}

// EnsureSchema creates the documents table when migrations have not been applied.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents schema: %w", err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, docs []storage.Document) ([]string, error) {
	prepared, err := storage.Prepare(docs)
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return []string{}, nil
	}

	cmd := `
		INSERT INTO documents (id, content, metadata, embedding)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET content = EXCLUDED.content,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding
	`

	batch := &pgx.Batch{}
	ids := make([]string, len(prepared))
	for i, d := range prepared {
		metadataJSON, err := marshalMetadata(d.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata for document %d: %w", i, err)
		}
		batch.Queue(cmd, d.ID, d.Content, metadataJSON, pgvector.NewVector(d.Embedding))
		ids[i] = d.ID
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()
	for range prepared {
		if _, err := br.Exec(); err != nil {
			return nil, fmt.Errorf("failed to insert documents: %w", err)
		}
	}

	slog.Debug("Saved documents to postgres", "count", len(ids))
	return ids, nil
}

func (s *Store) Search(ctx context.Context, req storage.SearchRequest) ([]storage.Hit, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	filterJSON, err := marshalMetadata(req.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filter: %w", err)
	}

	cmd := `
		SELECT id, content, metadata, embedding::text, 1 - (embedding <=> $1) AS score
		FROM documents
		WHERE metadata @> $2::jsonb
		  AND ($3::float8 <= -1 OR 1 - (embedding <=> $1) >= $3::float8)
		ORDER BY embedding <=> $1, id
		LIMIT $4
	`
	rows, err := s.db.Query(ctx, cmd, pgvector.NewVector(req.Vector), filterJSON, req.Threshold, req.TopK)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	defer rows.Close()

	hits := make([]storage.Hit, 0, req.TopK)
	for rows.Next() {
		var score float64
		doc, err := scanDocument(rows, &score)
		if err != nil {
			return nil, err
		}
		hits = append(hits, storage.Hit{Document: *doc, Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	storage.SortHits(hits)
	return hits, nil
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Document, error) {
	row := s.db.QueryRow(ctx, `SELECT id, content, metadata, embedding::text FROM documents WHERE id = $1`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound("document", id)
	}
	return doc, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("document", id)
	}
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, filter map[string]string) (int, error) {
	if len(filter) == 0 {
		return 0, apperr.NewValidation("delete filter must not be empty")
	}
	filterJSON, err := marshalMetadata(filter)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal filter: %w", err)
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM documents WHERE metadata @> $1::jsonb`, filterJSON)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *Store) List(ctx context.Context, offset, limit int) ([]storage.Document, error) {
	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, content, metadata, embedding::text
		FROM documents
		ORDER BY id
		OFFSET $1
		LIMIT $2
	`, offset, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]storage.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

func scanDocument(row pgx.Row, extra ...any) (*storage.Document, error) {
	var (
		doc          storage.Document
		metadataJSON []byte
		vectorText   string
	)
	dest := append([]any{&doc.ID, &doc.Content, &metadataJSON, &vectorText}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		if len(doc.Metadata) == 0 {
			doc.Metadata = nil
		}
	}

	var vec pgvector.Vector
	if err := vec.Parse(vectorText); err != nil {
		return nil, fmt.Errorf("failed to parse embedding: %w", err)
	}
	doc.Embedding = vec.Slice()

	return &doc, nil
}

func marshalMetadata(m map[string]string) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
