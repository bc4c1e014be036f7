package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"
)

type MemoryStore struct {
	mu        sync.Mutex
	nextID    int64
	turns     map[string][]ChatTurn
	diagnoses map[string][]DiagnosisRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:    1,
		turns:     make(map[string][]ChatTurn),
		diagnoses: make(map[string][]DiagnosisRecord),
	}
}

func (s *MemoryStore) InsertChatTurn(_ context.Context, userID, role, content string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("history: user id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[uid] = append(s.turns[uid], ChatTurn{
		ID:        s.nextID,
		UserID:    uid,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	s.nextID++
	return nil
}

func (s *MemoryStore) InsertDiagnosis(_ context.Context, userID, scenario string, diagnosis []byte) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("history: user id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnoses[uid] = append(s.diagnoses[uid], DiagnosisRecord{
		ID:        s.nextID,
		UserID:    uid,
		Scenario:  scenario,
		Diagnosis: json.RawMessage(append([]byte(nil), diagnosis...)),
		CreatedAt: time.Now(),
	})
	s.nextID++
	return nil
}

func (s *MemoryStore) ListChatTurns(_ context.Context, userID string, limit int) ([]ChatTurn, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("history: user id is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.turns[uid]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]ChatTurn, len(all))
	copy(out, all)
	return out, nil
}

// Diagnoses returns a copy of the user's stored diagnoses, oldest first.
func (s *MemoryStore) Diagnoses(userID string) []DiagnosisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.diagnoses[strings.TrimSpace(userID)]
	out := make([]DiagnosisRecord, len(all))
	copy(out, all)
	return out
}

var _ Store = (*MemoryStore)(nil)
