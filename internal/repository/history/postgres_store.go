package history

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func NewPostgresStoreDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS chat_turns (
  id BIGSERIAL PRIMARY KEY,
  user_id TEXT NOT NULL,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_chat_turns_user_id ON chat_turns (user_id, id);

CREATE TABLE IF NOT EXISTS diagnoses (
  id BIGSERIAL PRIMARY KEY,
  user_id TEXT NOT NULL,
  scenario TEXT NOT NULL,
  diagnosis JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_diagnoses_user_id ON diagnoses (user_id, id);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) InsertChatTurn(ctx context.Context, userID, role, content string) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("history: user id is required")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO chat_turns (user_id, role, content) VALUES ($1, $2, $3)`, uid, role, content)
	return err
}

func (s *PostgresStore) InsertDiagnosis(ctx context.Context, userID, scenario string, diagnosis []byte) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("history: user id is required")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO diagnoses (user_id, scenario, diagnosis) VALUES ($1, $2, $3)`, uid, scenario, diagnosis)
	return err
}

func (s *PostgresStore) ListChatTurns(ctx context.Context, userID string, limit int) ([]ChatTurn, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("history: user id is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, role, content, created_at
FROM (
  SELECT id, user_id, role, content, created_at
  FROM chat_turns WHERE user_id = $1
  ORDER BY id DESC LIMIT $2
) recent
ORDER BY id ASC`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ChatTurn, 0, limit)
	for rows.Next() {
		var t ChatTurn
		if err := rows.Scan(&t.ID, &t.UserID, &t.Role, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ Store = (*PostgresStore)(nil)
