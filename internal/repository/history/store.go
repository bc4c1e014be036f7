// Package history persists chat turns and diagnoses, append-only.
// Ordering matters only within a single user's own turn sequence.
package history

import (
	"context"
	"encoding/json"
	"time"
)

type ChatTurn struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type DiagnosisRecord struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"userId"`
	Scenario  string          `json:"scenario"`
	Diagnosis json.RawMessage `json:"diagnosis"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Store interface {
	InsertChatTurn(ctx context.Context, userID, role, content string) error
	InsertDiagnosis(ctx context.Context, userID, scenario string, diagnosis []byte) error
	// ListChatTurns returns the user's most recent turns in chronological
	// order, capped at limit (limit <= 0 means a default cap).
	ListChatTurns(ctx context.Context, userID string, limit int) ([]ChatTurn, error)
}

const defaultListLimit = 50
