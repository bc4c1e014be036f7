package assessment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// MemoryStore backs local runs and tests when DATABASE_URL is unset.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Record)}
}

func (s *MemoryStore) Upsert(_ context.Context, rec Record) error {
	uid := strings.TrimSpace(rec.UserID)
	if uid == "" {
		return errors.New("assessment: user id is required")
	}
	rec.UserID = uid
	rec.UpdatedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[uid] = rec
	return nil
}

func (s *MemoryStore) GetOrDefault(_ context.Context, userID string) (Record, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return Record{}, errors.New("assessment: user id is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.byID[uid]; ok {
		return rec, nil
	}
	return DefaultRecord(uid), nil
}
