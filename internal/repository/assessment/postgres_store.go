package assessment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps assessments in a single upserted row per user, with
// an LRU front for reads. Writes invalidate the cached entry.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, Record]
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
	cache, err := lru.New[string, Record](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db, cache: cache}, nil
}

// NewPostgresStoreDB wraps an already-open handle so the assessment and
// history stores can share one pool.
func NewPostgresStoreDB(db *sql.DB) (*PostgresStore, error) {
	cache, err := lru.New[string, Record](1024)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{db: db, cache: cache}, nil
}

func (s *PostgresStore) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS assessments (
  user_id TEXT PRIMARY KEY,
  purpose TEXT NOT NULL DEFAULT 'personal',
  bio_hardware DOUBLE PRECISION NOT NULL DEFAULT 5,
  internal_os DOUBLE PRECISION NOT NULL DEFAULT 5,
  cultural_software DOUBLE PRECISION NOT NULL DEFAULT 5,
  social_instance DOUBLE PRECISION NOT NULL DEFAULT 5,
  conscious_user DOUBLE PRECISION NOT NULL DEFAULT 5,
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Upsert(ctx context.Context, rec Record) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	uid := strings.TrimSpace(rec.UserID)
	if uid == "" {
		return errors.New("assessment: user id is required")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO assessments (
  user_id, purpose, bio_hardware, internal_os, cultural_software, social_instance, conscious_user, updated_at
)
VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
ON CONFLICT (user_id)
DO UPDATE SET purpose=EXCLUDED.purpose,
  bio_hardware=EXCLUDED.bio_hardware,
  internal_os=EXCLUDED.internal_os,
  cultural_software=EXCLUDED.cultural_software,
  social_instance=EXCLUDED.social_instance,
  conscious_user=EXCLUDED.conscious_user,
  updated_at=NOW()`,
		uid, rec.Purpose, rec.BioHardware, rec.InternalOS, rec.CulturalSoftware, rec.SocialInstance, rec.ConsciousUser)
	if err == nil && s.cache != nil {
		s.cache.Remove(uid)
	}
	return err
}

func (s *PostgresStore) GetOrDefault(ctx context.Context, userID string) (Record, error) {
	if err := s.ensureSchema(); err != nil {
		return Record{}, err
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return Record{}, errors.New("assessment: user id is required")
	}
	if s.cache != nil {
		if cached, ok := s.cache.Get(uid); ok {
			return cached, nil
		}
	}
	row := s.db.QueryRowContext(ctx, `
SELECT user_id, purpose, bio_hardware, internal_os, cultural_software, social_instance, conscious_user, updated_at
FROM assessments WHERE user_id = $1`, uid)
	var rec Record
	err := row.Scan(&rec.UserID, &rec.Purpose, &rec.BioHardware, &rec.InternalOS,
		&rec.CulturalSoftware, &rec.SocialInstance, &rec.ConsciousUser, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultRecord(uid), nil
	}
	if err != nil {
		return Record{}, err
	}
	if s.cache != nil {
		s.cache.Add(uid, rec)
	}
	return rec, nil
}
