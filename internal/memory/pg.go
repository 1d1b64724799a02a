package memory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chatSchema = `
	CREATE TABLE IF NOT EXISTS chat_messages (
		id         BIGSERIAL PRIMARY KEY,
		session_id TEXT        NOT NULL,
		role       TEXT        NOT NULL,
		content    TEXT        NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, id);
`

// PgStore persists chat history in the chat_messages table.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(pool *pg.ConnectionPool) *PgStore {
	return &PgStore{db: pool.GetConn()}
}

func (s *PgStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, chatSchema); err != nil {
		return fmt.Errorf("failed to create chat_messages schema: %w", err)
	}
	return nil
}

func (s *PgStore) Append(ctx context.Context, session string, messages ...llm.Message) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	rows := make([][]any, len(messages))
	for i, m := range messages {
		rows[i] = []any{session, string(m.Role), m.Content}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"chat_messages"},
		[]string{"session_id", "role", "content"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat messages: %w", err)
	}
	return nil
}

func (s *PgStore) History(ctx context.Context, session string, last int) ([]llm.Message, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	var limitArg any
	if last > 0 {
		limitArg = last
	}
	rows, err := s.db.Query(ctx, `
		SELECT role, content FROM (
			SELECT id, role, content
			FROM chat_messages
			WHERE session_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id
	`, session, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	defer rows.Close()

	out := make([]llm.Message, 0)
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		out = append(out, llm.Message{Role: llm.Role(role), Content: content})
	}
	return out, rows.Err()
}

func (s *PgStore) Clear(ctx context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM chat_messages WHERE session_id = $1`, session); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}

func (s *PgStore) Sessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT session_id FROM chat_messages ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
