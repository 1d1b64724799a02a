// Package sqlite stores documents in a single SQLite file and searches them
// by scanning every embedding.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		id        TEXT PRIMARY KEY,
		content   TEXT NOT NULL,
		metadata  TEXT NOT NULL DEFAULT '{}',
		embedding BLOB NOT NULL
	)
`

type Config struct {
	// Path is a file path or ":memory:".
	Path string
}

type Store struct {
	db *sql.DB
}

func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, apperr.NewValidation("sqlite path must not be empty")
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if cfg.Path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Healthy(ctx context.Context) bool {
	return s.db.PingContext(ctx) == nil
}

func (s *Store) Add(ctx context.Context, docs []storage.Document) ([]string, error) {
	prepared, err := storage.Prepare(docs)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, content, metadata, embedding) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET content = excluded.content, metadata = excluded.metadata, embedding = excluded.embedding
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, len(prepared))
	for i, d := range prepared {
		metadataJSON, err := marshalMetadata(d.Metadata)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, d.ID, d.Content, metadataJSON, EncodeEmbedding(d.Embedding)); err != nil {
			return nil, fmt.Errorf("failed to insert document %s: %w", d.ID, err)
		}
		ids[i] = d.ID
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit documents: %w", err)
	}
	slog.Debug("Saved documents to sqlite", "count", len(ids))
	return ids, nil
}

func (s *Store) Search(ctx context.Context, req storage.SearchRequest) ([]storage.Hit, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	docs, err := s.query(ctx, `SELECT id, content, metadata, embedding FROM documents`)
	if err != nil {
		return nil, err
	}

	hits := make([]storage.Hit, 0)
	for _, d := range docs {
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
		hits = append(hits, storage.Hit{Document: d, Score: score})
	}

	storage.SortHits(hits)
	if len(hits) > req.TopK {
		hits = hits[:req.TopK]
	}
	return hits, nil
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Document, error) {
	docs, err := s.query(ctx, `SELECT id, content, metadata, embedding FROM documents WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperr.NewNotFound("document", id)
	}
	return &docs[0], nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NewNotFound("document", id)
	}
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, filter map[string]string) (int, error) {
	if len(filter) == 0 {
		return 0, apperr.NewValidation("delete filter must not be empty")
	}
	docs, err := s.query(ctx, `SELECT id, content, metadata, embedding FROM documents`)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, d := range docs {
		if !storage.Matches(d.Metadata, filter) {
			continue
		}
		if err := s.Delete(ctx, d.ID); err != nil && !errors.As(err, new(*apperr.NotFoundError)) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *Store) List(ctx context.Context, offset, limit int) ([]storage.Document, error) {
	docs, err := s.query(ctx, `SELECT id, content, metadata, embedding FROM documents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	start, end := storage.Window(len(docs), offset, limit)
	return docs[start:end], nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]storage.Document, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]storage.Document, 0)
	for rows.Next() {
		var (
			d            storage.Document
			metadataJSON string
			blob         []byte
		)
		if err := rows.Scan(&d.ID, &d.Content, &metadataJSON, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if err := json.Unmarshal([]byte(metadataJSON), &d.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		if len(d.Metadata) == 0 {
			d.Metadata = nil
		}
		if d.Embedding, err = DecodeEmbedding(blob); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func marshalMetadata(m map[string]string) (string, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return string(b), nil
}
